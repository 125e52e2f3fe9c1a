package advisor

import (
	"context"
	"time"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/scoring"
	"dealflow/internal/metrics"
)

// Instrumented считает вызовы советника и их длительность.
type Instrumented struct {
	next scoring.Advisor
}

func NewInstrumented(next scoring.Advisor) *Instrumented {
	return &Instrumented{next: next}
}

func (a *Instrumented) Adjust(ctx context.Context, deal entity.Deal) (int, error) {
	start := time.Now()
	adj, err := a.next.Adjust(ctx, deal)
	metrics.AdvisorLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AdvisorRequests.WithLabelValues(metrics.ResultError).Inc()
		return 0, err
	}

	metrics.AdvisorRequests.WithLabelValues(metrics.ResultOK).Inc()
	return adj, nil
}
