package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"dealflow/pkg/logx"
)

const (
	defaultMaxRetry    = 3
	defaultTaskTimeout = time.Minute
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Producer ставит подбор покупателей в очередь asynq.
type Producer struct {
	client   enqueuer
	maxRetry int
	timeout  time.Duration
}

func NewProducer(client *asynq.Client) *Producer {
	return newProducer(client)
}

func newProducer(client enqueuer) *Producer {
	return &Producer{
		client:   client,
		maxRetry: defaultMaxRetry,
		timeout:  defaultTaskTimeout,
	}
}

func (p *Producer) WithMaxRetry(n int) *Producer {
	p.maxRetry = n
	return p
}

func (p *Producer) WithTimeout(d time.Duration) *Producer {
	if d > 0 {
		p.timeout = d
	}
	return p
}

// DispatchMatch реализует deal.MatchDispatcher.
// Уже стоящая в очереди задача для сделки не считается ошибкой.
func (p *Producer) DispatchMatch(ctx context.Context, dealID int64) error {
	task, err := NewMatchDealTask(dealID)
	if err != nil {
		return err
	}

	info, err := p.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueMatching),
		asynq.TaskID(matchDealTaskID(dealID)),
		asynq.MaxRetry(p.maxRetry),
		asynq.Timeout(p.timeout),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger(ctx).Debug("match task already queued", slog.Int64(logx.FieldDealID, dealID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("asynq enqueue: %w", err)
	}

	logger(ctx).Debug("match task queued",
		slog.Int64(logx.FieldDealID, dealID),
		slog.String("task_id", info.ID),
	)

	return nil
}

// Inline выполняет подбор сразу, без очереди.
type Inline struct {
	matcher DealMatcher
}

func NewInline(matcher DealMatcher) *Inline {
	return &Inline{matcher: matcher}
}

func (d *Inline) DispatchMatch(ctx context.Context, dealID int64) error {
	if _, err := d.matcher.MatchDeal(ctx, dealID); err != nil {
		return fmt.Errorf("match deal %d: %w", dealID, err)
	}

	return nil
}
