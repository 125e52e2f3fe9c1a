package matching

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/pkg/logx"
)

// MatchStore — хранилище совпадений. CreateIfAbsent должен атомарно
// проверять наличие пары (DealID, BuyerID) и вставлять запись;
// created=false, если запись уже была.
type MatchStore interface {
	CreateIfAbsent(ctx context.Context, m *entity.Match) (created bool, err error)
}

// Candidate — покупатель, прошедший порог.
type Candidate struct {
	Buyer entity.Buyer
	Score int
}

type Builder struct {
	matcher *Matcher
	store   MatchStore
	locks   *keyedMutex
}

func NewBuilder(matcher *Matcher, store MatchStore) *Builder {
	return &Builder{
		matcher: matcher,
		store:   store,
		locks:   newKeyedMutex(),
	}
}

// Rank оценивает активных покупателей, оставляет прошедших порог и
// сортирует по убыванию оценки. При равенстве сохраняется исходный порядок.
func (b *Builder) Rank(deal entity.Deal, buyers []entity.Buyer) []Candidate {
	scores := make([]int, len(buyers))

	var g errgroup.Group
	g.SetLimit(max(1, b.matcher.cfg.Parallelism))

	for i := range buyers {
		if !buyers[i].IsActive {
			continue
		}
		g.Go(func() error {
			scores[i] = b.matcher.Score(deal, buyers[i])
			return nil
		})
	}
	_ = g.Wait()

	candidates := make([]Candidate, 0, len(buyers))
	for i, buyer := range buyers {
		if buyer.IsActive && b.matcher.Qualifies(scores[i]) {
			candidates = append(candidates, Candidate{Buyer: buyer, Score: scores[i]})
		}
	}

	slices.SortStableFunc(candidates, func(a, c Candidate) int {
		return cmp.Compare(c.Score, a.Score)
	})

	return candidates
}

// Build ранжирует покупателей и сохраняет совпадения. Возвращает только
// созданные в этом вызове записи, существующие не трогаются.
func (b *Builder) Build(ctx context.Context, deal entity.Deal, buyers []entity.Buyer) ([]entity.Match, error) {
	candidates := b.Rank(deal, buyers)
	if len(candidates) == 0 {
		return []entity.Match{}, nil
	}

	unlock := b.locks.Lock(deal.ID)
	defer unlock()

	created := make([]entity.Match, 0, len(candidates))
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return created, fmt.Errorf("build matches: %w", err)
		}

		m := entity.Match{
			DealID:     deal.ID,
			BuyerID:    c.Buyer.ID,
			MatchScore: c.Score,
			Status:     value.MatchStatusPending,
		}

		ok, err := b.store.CreateIfAbsent(ctx, &m)
		if err != nil {
			return created, fmt.Errorf("create match for buyer %d: %w", c.Buyer.ID, err)
		}
		if !ok {
			continue
		}

		created = append(created, m)
	}

	logger(ctx).Info("matches built",
		slog.Int64(logx.FieldDealID, deal.ID),
		slog.Int("candidates", len(candidates)),
		slog.Int("created", len(created)),
	)

	return created, nil
}

// keyedMutex сериализует вставки по одной сделке, не блокируя другие.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*refMutex)}
}

func (k *keyedMutex) Lock(key int64) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refMutex{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
