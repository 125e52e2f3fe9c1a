package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/deal"
	"dealflow/internal/domain/service/stats"
	"dealflow/internal/transport/bot/handler"
	"dealflow/internal/transport/bot/view"
	"dealflow/pkg/errcodes"
)

func TestStatus(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	statsMock := &handler.StatsServiceMock{
		SnapshotFunc: func(context.Context) (stats.Snapshot, error) {
			return stats.Snapshot{TotalDeals: 12, HotDeals: 4, TotalBuyers: 3, ActiveBuyers: 2}, nil
		},
		HotScoreFunc: func() int { return 80 },
	}
	sweeper := &handler.SweeperMock{IsRunningFunc: func() bool { return true }}

	h := handler.New(statsMock, &handler.DealServiceMock{}, sweeper)

	text, err := h.Status(context.Background())
	rq.NoError(err)
	rq.Contains(text, "12 (горячих ≥80: 4)")
	rq.Contains(text, "работает")
}

func TestStatusError(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	statsMock := &handler.StatsServiceMock{
		SnapshotFunc: func(context.Context) (stats.Snapshot, error) {
			return stats.Snapshot{}, errors.New("db down")
		},
	}

	h := handler.New(statsMock, &handler.DealServiceMock{}, &handler.SweeperMock{})

	_, err := h.Status(context.Background())
	rq.Error(err)
}

func TestTop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deals    []entity.Deal
		contains []string
	}{
		{
			name:     "empty",
			contains: []string{view.NoDeals},
		},
		{
			name: "escapes titles",
			deals: []entity.Deal{
				{ID: 1, Title: "Camry <2019>", Price: decimal.NewFromInt(15000), AIScore: 91},
				{ID: 2, Title: "Forklift", Price: decimal.NewFromInt(5000), AIScore: 85},
			},
			contains: []string{"Camry &lt;2019&gt;", "$15000.00", "оценка 91", "2. <code>2</code>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			statsMock := &handler.StatsServiceMock{
				TopDealsFunc: func(_ context.Context, limit int) ([]entity.Deal, error) {
					rq.Equal(10, limit)
					return tt.deals, nil
				},
			}

			h := handler.New(statsMock, &handler.DealServiceMock{}, &handler.SweeperMock{})

			text, err := h.Top(context.Background())
			rq.NoError(err)
			for _, s := range tt.contains {
				rq.Contains(text, s)
			}
		})
	}
}

func TestDeal(t *testing.T) {
	t.Parallel()

	mv := decimal.NewFromInt(20000)
	discount := 25.0

	tests := []struct {
		name     string
		text     string
		get      func(context.Context, int64) (*entity.Deal, error)
		expected []string
		err      bool
	}{
		{
			name:     "no argument",
			text:     "/deal",
			expected: []string{view.UsageDeal},
		},
		{
			name:     "bad id",
			text:     "/deal abc",
			expected: []string{view.InvalidID},
		},
		{
			name: "not found",
			text: "/deal 7",
			get: func(context.Context, int64) (*entity.Deal, error) {
				return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
			},
			expected: []string{"<code>7</code> не найдена"},
		},
		{
			name: "card",
			text: "/deal 7",
			get: func(_ context.Context, id int64) (*entity.Deal, error) {
				return &entity.Deal{
					ID:                   id,
					Title:                "Camry",
					Price:                decimal.NewFromInt(15000),
					MarketValue:          &mv,
					MarketValueEstimated: true,
					DiscountPercentage:   &discount,
					Category:             "vehicles",
					Source:               "fsbo",
					Status:               entity.DealStatusActive,
					AIScore:              88,
					ScoreFactors:         []string{"25% below market value"},
				}, nil
			},
			expected: []string{"<b>Camry</b>", "$20000.00 (оценка)", "Скидка: 25.0%", "88/100", "• 25% below market value"},
		},
		{
			name: "store error",
			text: "/deal 7",
			get: func(context.Context, int64) (*entity.Deal, error) {
				return nil, errors.New("timeout")
			},
			err: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			deals := &handler.DealServiceMock{GetFunc: tt.get}
			h := handler.New(&handler.StatsServiceMock{}, deals, &handler.SweeperMock{})

			text, err := h.Deal(context.Background(), tt.text)
			if tt.err {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			for _, s := range tt.expected {
				rq.Contains(text, s)
			}
		})
	}
}

func TestRescore(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	deals := &handler.DealServiceMock{
		RescoreFunc: func(_ context.Context, id int64) (deal.IngestResult, error) {
			return deal.IngestResult{Deal: entity.Deal{ID: id, AIScore: 73}, Dispatched: true}, nil
		},
	}
	h := handler.New(&handler.StatsServiceMock{}, deals, &handler.SweeperMock{})

	text, err := h.Rescore(context.Background(), "/rescore 5")
	rq.NoError(err)
	rq.Contains(text, "73/100")
	rq.Contains(text, "Подбор покупателей запущен")
	rq.Equal(int64(5), deals.RescoreCalls()[0].Id)
}

func TestSweepControl(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	running := false
	sweeper := &handler.SweeperMock{
		IsRunningFunc: func() bool { return running },
		StartFunc: func(ctx context.Context) error {
			rq.NoError(ctx.Err())
			running = true
			return nil
		},
		StopFunc: func() { running = false },
	}
	h := handler.New(&handler.StatsServiceMock{}, &handler.DealServiceMock{}, sweeper)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rq.Equal(view.SweeperIdle, h.StopSweep())
	rq.Equal(view.SweeperStarted, h.StartSweep(ctx))
	rq.Equal(view.SweeperRunning, h.StartSweep(ctx))
	rq.Equal(view.SweeperStopped, h.StopSweep())
	rq.Len(sweeper.StartCalls(), 1)
	rq.Len(sweeper.StopCalls(), 1)
}
