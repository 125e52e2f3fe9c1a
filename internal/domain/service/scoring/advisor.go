package scoring

import (
	"context"

	"dealflow/internal/domain/entity"
)

// Advisor — внешний советник (например, LLM), дающий поправку к оценке.
// Результат недетерминирован, поэтому он отделён от основной модели.
type Advisor interface {
	Adjust(ctx context.Context, deal entity.Deal) (int, error)
}

// NopAdvisor — советник по умолчанию, поправка всегда 0.
type NopAdvisor struct{}

func (NopAdvisor) Adjust(context.Context, entity.Deal) (int, error) {
	return 0, nil
}

// AdvisorFunc позволяет использовать функцию как Advisor.
type AdvisorFunc func(ctx context.Context, deal entity.Deal) (int, error)

func (f AdvisorFunc) Adjust(ctx context.Context, deal entity.Deal) (int, error) {
	return f(ctx, deal)
}
