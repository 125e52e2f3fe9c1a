package matching_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/matching"
	"dealflow/internal/domain/value"
)

type memoryStore struct {
	mu      sync.Mutex
	nextID  int64
	matches map[[2]int64]entity.Match
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{matches: make(map[[2]int64]entity.Match)}
}

func (s *memoryStore) CreateIfAbsent(_ context.Context, m *entity.Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return false, s.err
	}

	key := [2]int64{m.DealID, m.BuyerID}
	if _, ok := s.matches[key]; ok {
		return false, nil
	}

	s.nextID++
	m.ID = s.nextID
	s.matches[key] = *m
	return true, nil
}

func scoredDeal() entity.Deal {
	return entity.Deal{
		ID:       7,
		Price:    decimal.NewFromInt(30000),
		Category: value.CategoryVehicles,
		Location: "Austin, TX",
		AIScore:  85,
	}
}

func buyers() []entity.Buyer {
	return []entity.Buyer{
		// 15 + 15 + 10 + 20 = 60
		{ID: 1, IsActive: true},
		// 30 + 30 + 20 + 20 = 100
		{ID: 2, IsActive: true, Categories: []value.Category{value.CategoryVehicles}, BudgetMin: dec(20000), BudgetMax: dec(40000), Locations: []string{"austin"}},
		// 0 + 15 + 0 + 20 = 35
		{ID: 3, IsActive: true, Categories: []value.Category{value.CategoryRealEstate}, Locations: []string{"Boston"}},
		// 100, но неактивен
		{ID: 4, IsActive: false, Categories: []value.Category{value.CategoryVehicles}, BudgetMin: dec(20000), BudgetMax: dec(40000), Locations: []string{"austin"}},
		// 60, как первый
		{ID: 5, IsActive: true},
		// 30 + 15 + 10 + 20 = 75
		{ID: 6, IsActive: true, Categories: []value.Category{value.CategoryVehicles}},
	}
}

func TestBuilder_Rank(t *testing.T) {
	rq := require.New(t)
	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), newMemoryStore())

	ranked := builder.Rank(scoredDeal(), buyers())

	ids := make([]int64, 0, len(ranked))
	scores := make([]int, 0, len(ranked))
	for _, c := range ranked {
		ids = append(ids, c.Buyer.ID)
		scores = append(scores, c.Score)
	}

	rq.Equal([]int64{2, 6, 1, 5}, ids)
	rq.Equal([]int{100, 75, 60, 60}, scores)
}

func TestBuilder_RankSequential(t *testing.T) {
	rq := require.New(t)
	cfg := matching.DefaultConfig()
	cfg.Parallelism = 0
	builder := matching.NewBuilder(matching.NewMatcher(cfg), newMemoryStore())

	rq.Len(builder.Rank(scoredDeal(), buyers()), 4)
	rq.Empty(builder.Rank(scoredDeal(), nil))
}

func TestBuilder_BuildIsIdempotent(t *testing.T) {
	rq := require.New(t)
	store := newMemoryStore()
	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), store)

	first, err := builder.Build(context.Background(), scoredDeal(), buyers())
	rq.NoError(err)
	rq.Len(first, 4)
	for _, m := range first {
		rq.NotZero(m.ID)
		rq.Equal(int64(7), m.DealID)
		rq.Equal(value.MatchStatusPending, m.Status)
	}

	second, err := builder.Build(context.Background(), scoredDeal(), buyers())
	rq.NoError(err)
	rq.Empty(second)
	rq.Len(store.matches, 4)
}

func TestBuilder_BuildConcurrent(t *testing.T) {
	rq := require.New(t)
	store := newMemoryStore()
	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), store)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := builder.Build(context.Background(), scoredDeal(), buyers())
			rq.NoError(err)

			mu.Lock()
			total += len(created)
			mu.Unlock()
		}()
	}
	wg.Wait()

	rq.Equal(4, total)
}

func TestBuilder_BuildStoreError(t *testing.T) {
	rq := require.New(t)
	store := newMemoryStore()
	store.err = errors.New("connection refused")
	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), store)

	created, err := builder.Build(context.Background(), scoredDeal(), buyers())
	rq.ErrorIs(err, store.err)
	rq.Empty(created)
}

func TestBuilder_BuildCanceled(t *testing.T) {
	rq := require.New(t)
	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), newMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.Build(ctx, scoredDeal(), buyers())
	rq.ErrorIs(err, context.Canceled)
}
