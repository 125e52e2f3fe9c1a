package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/entity"
	"dealflow/internal/worker"
)

func TestSweeper_SweepOnce(t *testing.T) {
	rq := require.New(t)

	lister := &worker.DealListerMock{
		ListFunc: func(_ context.Context, _ entity.DealFilter) ([]entity.Deal, error) {
			return []entity.Deal{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	dispatcher := &worker.MatchDispatcherMock{
		DispatchMatchFunc: func(_ context.Context, dealID int64) error {
			if dealID == 2 {
				return errors.New("queue down")
			}
			return nil
		},
	}

	w := worker.NewSweeper(lister, dispatcher, 60).WithLimit(25).WithPace(0)
	rq.Equal(2, w.SweepOnce(context.Background()))

	filter := lister.ListCalls()[0].Filter
	rq.Equal(60, *filter.MinScore)
	rq.Equal(entity.DealStatusActive, filter.Status)
	rq.Equal(25, filter.Limit)
	rq.Len(dispatcher.DispatchMatchCalls(), 3)
}

func TestSweeper_ListError(t *testing.T) {
	rq := require.New(t)

	lister := &worker.DealListerMock{
		ListFunc: func(context.Context, entity.DealFilter) ([]entity.Deal, error) {
			return nil, errors.New("db down")
		},
	}
	dispatcher := &worker.MatchDispatcherMock{}

	w := worker.NewSweeper(lister, dispatcher, 60)
	rq.Zero(w.SweepOnce(context.Background()))
	rq.Empty(dispatcher.DispatchMatchCalls())
}

func TestSweeper_StartStop(t *testing.T) {
	rq := require.New(t)

	swept := make(chan struct{}, 1)
	lister := &worker.DealListerMock{
		ListFunc: func(context.Context, entity.DealFilter) ([]entity.Deal, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return nil, nil
		},
	}

	w := worker.NewSweeper(lister, &worker.MatchDispatcherMock{}, 60).WithInterval(time.Hour)
	rq.NoError(w.Start(context.Background()))
	rq.True(w.IsRunning())
	rq.Error(w.Start(context.Background()))

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not run")
	}

	w.Stop()
	rq.False(w.IsRunning())
	w.Stop()
}
