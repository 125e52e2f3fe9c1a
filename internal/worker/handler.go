package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/metrics"
	"dealflow/pkg/application/modules"
	"dealflow/pkg/contextx"
	"dealflow/pkg/logx"
)

//go:generate moq -rm -out mocks.gen.go . DealMatcher DealLister MatchDispatcher

type DealMatcher interface {
	MatchDeal(ctx context.Context, dealID int64) (entity.MatchReport, error)
}

type Handler struct {
	matcher DealMatcher
}

func NewHandler(matcher DealMatcher) *Handler {
	return &Handler{matcher: matcher}
}

// Handlers возвращает обработчики для modules.AsynqServer.
func (h *Handler) Handlers() []modules.AsynqHandler {
	return []modules.AsynqHandler{
		{Pattern: TypeMatchDeal, Handle: h.HandleMatchDeal},
	}
}

// HandleMatchDeal подбирает покупателей для сделки из задачи.
// Битая задача и удалённая сделка не повторяются.
func (h *Handler) HandleMatchDeal(ctx context.Context, task *asynq.Task) error {
	var payload MatchDealPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		metrics.TasksProcessed.WithLabelValues(TypeMatchDeal, metrics.ResultError).Inc()
		return fmt.Errorf("json.Unmarshal: %v: %w", err, asynq.SkipRetry)
	}

	ctx = contextx.WithDealID(ctx, contextx.DealID(payload.DealID))
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTaskType, TypeMatchDeal),
		slog.Int64(logx.FieldDealID, payload.DealID),
	))

	report, err := h.matcher.MatchDeal(ctx, payload.DealID)
	if err != nil {
		metrics.TasksProcessed.WithLabelValues(TypeMatchDeal, metrics.ResultError).Inc()

		if domain.IsNotFound(err) {
			logger(ctx).Warn("deal vanished before matching")
			return fmt.Errorf("match deal: %v: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("match deal: %w", err)
	}

	metrics.TasksProcessed.WithLabelValues(TypeMatchDeal, metrics.ResultOK).Inc()

	logger(ctx).Info("match task done",
		slog.Int("created", len(report.Created)),
		slog.Int("notified", report.Notified),
		slog.Int("failed", report.Failed),
	)

	return nil
}
