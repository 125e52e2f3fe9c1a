package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dealflow/internal/domain/entity"
	"dealflow/pkg/logx"
)

const (
	defaultSweepInterval = 15 * time.Minute
	defaultSweepLimit    = 100
	defaultSweepPace     = 250 * time.Millisecond
)

type DealLister interface {
	List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error)
}

type MatchDispatcher interface {
	DispatchMatch(ctx context.Context, dealID int64) error
}

// Sweeper периодически повторяет подбор для лучших активных сделок, чтобы
// новые покупатели получили совпадения по уже принятым сделкам.
type Sweeper struct {
	deals      DealLister
	dispatcher MatchDispatcher
	minScore   int
	limit      int
	interval   time.Duration

	pace        time.Duration
	lastRequest time.Time

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewSweeper(deals DealLister, dispatcher MatchDispatcher, minScore int) *Sweeper {
	return &Sweeper{
		deals:      deals,
		dispatcher: dispatcher,
		minScore:   minScore,
		limit:      defaultSweepLimit,
		interval:   defaultSweepInterval,
		pace:       defaultSweepPace,
	}
}

func (w *Sweeper) WithInterval(d time.Duration) *Sweeper {
	if d > 0 {
		w.interval = d
	}
	return w
}

func (w *Sweeper) WithLimit(n int) *Sweeper {
	if n > 0 {
		w.limit = n
	}
	return w
}

// WithPace задаёт минимальный интервал между постановками задач.
func (w *Sweeper) WithPace(d time.Duration) *Sweeper {
	w.pace = d
	return w
}

func (w *Sweeper) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("sweeper is already running")
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(sweepCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("sweeper stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *Sweeper) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Sweeper) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run выполняет проход сразу и затем по таймеру до отмены контекста.
func (w *Sweeper) Run(ctx context.Context) error {
	logger(ctx).Info("sweeper started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.SweepOnce(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// SweepOnce ставит подбор для каждой подходящей сделки и возвращает число
// поставленных задач.
func (w *Sweeper) SweepOnce(ctx context.Context) int {
	minScore := w.minScore
	deals, err := w.deals.List(ctx, entity.DealFilter{
		MinScore: &minScore,
		Status:   entity.DealStatusActive,
		Limit:    w.limit,
	})
	if err != nil {
		logger(ctx).Error("failed to list deals for sweep", logx.Error(err))
		return 0
	}

	var dispatched int

	for _, d := range deals {
		if err := w.waitForNextSlot(ctx); err != nil {
			return dispatched
		}

		if err := w.dispatcher.DispatchMatch(ctx, d.ID); err != nil {
			logger(ctx).Error("sweep dispatch failed", slog.Int64(logx.FieldDealID, d.ID), logx.Error(err))
			continue
		}

		dispatched++
	}

	if dispatched > 0 {
		logger(ctx).Info("sweep completed", slog.Int("dispatched", dispatched))
	}

	return dispatched
}

func (w *Sweeper) waitForNextSlot(ctx context.Context) error {
	if w.lastRequest.IsZero() || w.pace <= 0 {
		w.lastRequest = time.Now()
		return ctx.Err()
	}

	elapsed := time.Since(w.lastRequest)
	if elapsed >= w.pace {
		w.lastRequest = time.Now()
		return ctx.Err()
	}

	select {
	case <-time.After(w.pace - elapsed):
		w.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
