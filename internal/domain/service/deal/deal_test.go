package deal_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/deal"
	"dealflow/internal/domain/service/scoring"
	"dealflow/internal/domain/service/valuation"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
)

func newRepo() *deal.RepositoryMock {
	stored := map[int64]entity.Deal{}
	var nextID int64

	return &deal.RepositoryMock{
		CreateFunc: func(_ context.Context, d *entity.Deal) error {
			nextID++
			d.ID = nextID
			stored[d.ID] = *d
			return nil
		},
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Deal, error) {
			d, ok := stored[id]
			if !ok {
				return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
			}
			return &d, nil
		},
		UpdateFunc: func(_ context.Context, d *entity.Deal) error {
			stored[d.ID] = *d
			return nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			delete(stored, id)
			return nil
		},
		ListFunc: func(_ context.Context, _ entity.DealFilter) ([]entity.Deal, error) {
			return []entity.Deal{}, nil
		},
	}
}

func newDispatcher(err error) *deal.MatchDispatcherMock {
	return &deal.MatchDispatcherMock{
		DispatchMatchFunc: func(context.Context, int64) error { return err },
	}
}

func newService(repo deal.Repository) *deal.Service {
	return deal.NewService(repo, scoring.NewDefault(), valuation.NewDefault())
}

func motivated() entity.NewDeal {
	mv := decimal.NewFromInt(100000)
	return entity.NewDeal{
		Title:       "Must sell, divorce, motivated seller",
		Price:       decimal.NewFromInt(60000),
		MarketValue: &mv,
		Category:    value.CategoryRealEstate,
		Source:      value.SourceFSBO,
		SourceURL:   "https://example.com/listing/1",
	}
}

func TestIngest(t *testing.T) {
	rq := require.New(t)
	repo := newRepo()
	dispatcher := newDispatcher(nil)
	svc := newService(repo).WithDispatcher(dispatcher)

	res, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)
	rq.True(res.Dispatched)
	rq.Equal(int64(1), res.Deal.ID)
	rq.Equal(100, res.Deal.AIScore)
	rq.Equal(entity.DealStatusActive, res.Deal.Status)
	rq.False(res.Deal.MarketValueEstimated)
	rq.Len(res.Deal.UrgencyKeywords, 3)
	rq.NotNil(res.Deal.ProfitPotential)
	rq.True(res.Deal.ProfitPotential.Equal(decimal.NewFromInt(40000)))

	rq.Len(repo.CreateCalls(), 1)
	rq.Len(dispatcher.DispatchMatchCalls(), 1)
	rq.Equal(int64(1), dispatcher.DispatchMatchCalls()[0].DealID)
}

func TestIngest_EstimatesMarketValue(t *testing.T) {
	rq := require.New(t)
	svc := newService(newRepo())

	in := motivated()
	in.MarketValue = nil

	res, err := svc.Ingest(context.Background(), in)
	rq.NoError(err)
	rq.True(res.Deal.MarketValueEstimated)
	rq.NotNil(res.Deal.MarketValue)
	rq.True(res.Deal.MarketValue.Equal(decimal.NewFromInt(78000)))
	rq.False(res.Dispatched)
}

func TestIngest_BelowGate(t *testing.T) {
	rq := require.New(t)
	dispatcher := newDispatcher(nil)
	svc := newService(newRepo()).WithDispatcher(dispatcher)

	// 50 - 10 (too cheap) + 6 + 5 = 51
	res, err := svc.Ingest(context.Background(), entity.NewDeal{
		Title:    "Box of tiles",
		Price:    decimal.NewFromInt(500),
		Category: value.CategoryWholesale,
		Source:   value.SourceDealer,
	})
	rq.NoError(err)
	rq.Equal(51, res.Deal.AIScore)
	rq.False(res.Dispatched)
	rq.Empty(dispatcher.DispatchMatchCalls())
}

func TestIngest_DispatchFailureIsNotFatal(t *testing.T) {
	rq := require.New(t)
	svc := newService(newRepo()).WithDispatcher(newDispatcher(errors.New("redis down")))

	res, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)
	rq.False(res.Dispatched)
	rq.NotZero(res.Deal.ID)
}

func TestIngest_DuplicateSourceURL(t *testing.T) {
	rq := require.New(t)
	repo := newRepo()
	svc := newService(repo)

	_, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)

	_, err = svc.Ingest(context.Background(), motivated())
	rq.True(domain.HasCode(err, errcodes.DealAlreadyIngested))
	rq.True(domain.IsConflict(err))
	rq.Len(repo.CreateCalls(), 1)
}

func TestIngest_ConcurrentSameSourceURL(t *testing.T) {
	rq := require.New(t)

	repo := newRepo()
	var mu sync.Mutex
	create := repo.CreateFunc
	repo.CreateFunc = func(ctx context.Context, d *entity.Deal) error {
		mu.Lock()
		defer mu.Unlock()
		return create(ctx, d)
	}
	svc := newService(repo)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Ingest(context.Background(), motivated())
		}()
	}
	wg.Wait()

	conflicts := 0
	for _, err := range errs {
		if err != nil {
			rq.True(domain.HasCode(err, errcodes.DealAlreadyIngested))
			conflicts++
		}
	}
	rq.Equal(workers-1, conflicts)
	rq.Len(repo.CreateCalls(), 1)
}

func TestIngest_FailedCreateReleasesSourceURL(t *testing.T) {
	rq := require.New(t)

	repo := newRepo()
	create := repo.CreateFunc
	fail := true
	repo.CreateFunc = func(ctx context.Context, d *entity.Deal) error {
		if fail {
			fail = false
			return errors.New("connection refused")
		}
		return create(ctx, d)
	}
	svc := newService(repo)

	_, err := svc.Ingest(context.Background(), motivated())
	rq.Error(err)

	res, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)
	rq.NotZero(res.Deal.ID)
}

func TestIngest_Validation(t *testing.T) {
	rq := require.New(t)
	svc := newService(newRepo())
	negative := decimal.NewFromInt(-1)

	testCases := []struct {
		name   string
		modify func(d *entity.NewDeal)
		code   failure.ErrorCode
	}{
		{name: "Missing title", modify: func(d *entity.NewDeal) { d.Title = "  " }, code: errcodes.ValidationError},
		{name: "Negative price", modify: func(d *entity.NewDeal) { d.Price = negative }, code: errcodes.InvalidPrice},
		{name: "Negative market value", modify: func(d *entity.NewDeal) { d.MarketValue = &negative }, code: errcodes.InvalidPrice},
		{name: "Missing category", modify: func(d *entity.NewDeal) { d.Category = "" }, code: errcodes.InvalidCategory},
		{name: "Missing source", modify: func(d *entity.NewDeal) { d.Source = "" }, code: errcodes.InvalidSource},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			in := motivated()
			in.SourceURL = ""
			tc.modify(&in)

			_, err := svc.Ingest(context.Background(), in)
			rq.Error(err)
			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code)
			rq.True(domain.IsInvalidArgument(err))
		})
	}
}

func TestUpdate(t *testing.T) {
	rq := require.New(t)
	repo := newRepo()
	svc := newService(repo)

	in := motivated()
	in.MarketValue = nil
	created, err := svc.Ingest(context.Background(), in)
	rq.NoError(err)

	_, err = svc.Update(context.Background(), created.Deal.ID, entity.DealUpdate{})
	rq.True(domain.HasCode(err, errcodes.ValidationError))

	price := decimal.NewFromInt(100000)
	updated, err := svc.Update(context.Background(), created.Deal.ID, entity.DealUpdate{Price: &price})
	rq.NoError(err)
	rq.True(updated.MarketValueEstimated)
	rq.True(updated.MarketValue.Equal(decimal.NewFromInt(130000)))

	mv := decimal.NewFromInt(200000)
	updated, err = svc.Update(context.Background(), created.Deal.ID, entity.DealUpdate{MarketValue: &mv})
	rq.NoError(err)
	rq.False(updated.MarketValueEstimated)
	rq.Contains(updated.ScoreFactors, "Excellent discount: 50.0%")
	rq.Len(repo.UpdateCalls(), 2)

	_, err = svc.Update(context.Background(), 999, entity.DealUpdate{MarketValue: &mv})
	rq.True(domain.IsNotFound(err))
}

func TestRescore(t *testing.T) {
	rq := require.New(t)
	dispatcher := newDispatcher(nil)
	svc := newService(newRepo()).WithDispatcher(dispatcher).WithMatchGate(90)

	created, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)
	rq.True(created.Dispatched)

	res, err := svc.Rescore(context.Background(), created.Deal.ID)
	rq.NoError(err)
	rq.Equal(created.Deal.AIScore, res.Deal.AIScore)
	rq.Equal(created.Deal.ScoreFactors, res.Deal.ScoreFactors)
	rq.True(res.Dispatched)
	rq.Len(dispatcher.DispatchMatchCalls(), 2)
}

func TestList(t *testing.T) {
	rq := require.New(t)
	repo := newRepo()
	svc := newService(repo)

	_, err := svc.List(context.Background(), entity.DealFilter{Limit: -1})
	rq.True(domain.HasCode(err, errcodes.InvalidPaging))

	_, err = svc.List(context.Background(), entity.DealFilter{})
	rq.NoError(err)
	_, err = svc.List(context.Background(), entity.DealFilter{Limit: 10000})
	rq.NoError(err)

	calls := repo.ListCalls()
	rq.Len(calls, 2)
	rq.Equal(50, calls[0].Filter.Limit)
	rq.Equal(500, calls[1].Filter.Limit)
}

func TestGetAndDelete(t *testing.T) {
	rq := require.New(t)
	svc := newService(newRepo())

	_, err := svc.Get(context.Background(), 0)
	rq.True(domain.HasCode(err, errcodes.InvalidDealID))

	created, err := svc.Ingest(context.Background(), motivated())
	rq.NoError(err)

	got, err := svc.Get(context.Background(), created.Deal.ID)
	rq.NoError(err)
	rq.Equal(created.Deal.Title, got.Title)

	rq.NoError(svc.Delete(context.Background(), created.Deal.ID))
	_, err = svc.Get(context.Background(), created.Deal.ID)
	rq.True(domain.IsNotFound(err))
}
