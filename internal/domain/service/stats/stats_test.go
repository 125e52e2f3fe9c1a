package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/stats"
)

func newMocks() (*stats.DealCounterMock, *stats.BuyerCounterMock, *stats.MatchCounterMock) {
	deals := &stats.DealCounterMock{
		CountFunc: func(_ context.Context, minScore int) (int, int, error) {
			return 12, 3, nil
		},
		ListFunc: func(_ context.Context, filter entity.DealFilter) ([]entity.Deal, error) {
			out := make([]entity.Deal, 0, filter.Limit)
			for i := range filter.Limit {
				out = append(out, entity.Deal{ID: int64(i + 1), AIScore: 100 - i})
			}
			return out, nil
		},
	}
	buyers := &stats.BuyerCounterMock{
		CountFunc: func(context.Context) (int, int, error) { return 5, 4, nil },
	}
	matches := &stats.MatchCounterMock{
		CountByStatusFunc: func(context.Context) (map[string]int, error) {
			return map[string]int{"pending": 2, "notified": 6, "interested": 1}, nil
		},
	}

	return deals, buyers, matches
}

func TestSnapshot(t *testing.T) {
	rq := require.New(t)
	deals, buyers, matches := newMocks()

	s := stats.NewService(deals, buyers, matches).WithHotScore(75).WithTopLimit(3)
	snap, err := s.Snapshot(context.Background())
	rq.NoError(err)

	rq.Equal(12, snap.TotalDeals)
	rq.Equal(3, snap.HotDeals)
	rq.Equal(5, snap.TotalBuyers)
	rq.Equal(4, snap.ActiveBuyers)
	rq.Equal(9, snap.TotalMatches)
	rq.Equal(1, snap.InterestedMatches)
	rq.Len(snap.TopDeals, 3)
	rq.Equal(75, deals.CountCalls()[0].MinScore)
}

func TestSnapshot_Error(t *testing.T) {
	rq := require.New(t)
	deals, buyers, matches := newMocks()
	buyers.CountFunc = func(context.Context) (int, int, error) { return 0, 0, errors.New("db down") }

	_, err := stats.NewService(deals, buyers, matches).Snapshot(context.Background())
	rq.ErrorContains(err, "count buyers")
}

func TestTopDeals_DefaultLimit(t *testing.T) {
	rq := require.New(t)
	deals, buyers, matches := newMocks()

	top, err := stats.NewService(deals, buyers, matches).TopDeals(context.Background(), 0)
	rq.NoError(err)
	rq.Len(top, 10)
}
