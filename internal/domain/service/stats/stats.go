package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
)

const (
	defaultHotScore = 80
	defaultTopLimit = 10
)

//go:generate moq -rm -out mocks.gen.go . DealCounter BuyerCounter MatchCounter

type DealCounter interface {
	Count(ctx context.Context, minScore int) (total, hot int, err error)
	List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error)
}

type BuyerCounter interface {
	Count(ctx context.Context) (total, active int, err error)
}

type MatchCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// Snapshot — сводка по сделкам, покупателям и совпадениям.
type Snapshot struct {
	TotalDeals        int            `json:"total_deals"`
	HotDeals          int            `json:"hot_deals"`
	TotalBuyers       int            `json:"total_buyers"`
	ActiveBuyers      int            `json:"active_buyers"`
	TotalMatches      int            `json:"total_matches"`
	InterestedMatches int            `json:"interested_matches"`
	MatchesByStatus   map[string]int `json:"matches_by_status"`
	TopDeals          []entity.Deal  `json:"top_deals"`
}

type Service struct {
	deals    DealCounter
	buyers   BuyerCounter
	matches  MatchCounter
	hotScore int
	topLimit int
}

func NewService(deals DealCounter, buyers BuyerCounter, matches MatchCounter) *Service {
	return &Service{
		deals:    deals,
		buyers:   buyers,
		matches:  matches,
		hotScore: defaultHotScore,
		topLimit: defaultTopLimit,
	}
}

// WithHotScore — с какой оценки сделка считается горячей.
func (s *Service) WithHotScore(score int) *Service {
	s.hotScore = score
	return s
}

func (s *Service) WithTopLimit(n int) *Service {
	if n > 0 {
		s.topLimit = n
	}
	return s
}

func (s *Service) HotScore() int {
	return s.hotScore
}

// Snapshot собирает сводку, опрашивая хранилища параллельно.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, hot, err := s.deals.Count(gctx, s.hotScore)
		if err != nil {
			return fmt.Errorf("count deals: %w", err)
		}
		snap.TotalDeals, snap.HotDeals = total, hot
		return nil
	})

	g.Go(func() error {
		total, active, err := s.buyers.Count(gctx)
		if err != nil {
			return fmt.Errorf("count buyers: %w", err)
		}
		snap.TotalBuyers, snap.ActiveBuyers = total, active
		return nil
	})

	g.Go(func() error {
		byStatus, err := s.matches.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count matches: %w", err)
		}
		snap.MatchesByStatus = byStatus
		return nil
	})

	g.Go(func() error {
		top, err := s.TopDeals(gctx, s.topLimit)
		if err != nil {
			return err
		}
		snap.TopDeals = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if snap.MatchesByStatus == nil {
		snap.MatchesByStatus = map[string]int{}
	}
	for _, n := range snap.MatchesByStatus {
		snap.TotalMatches += n
	}
	snap.InterestedMatches = snap.MatchesByStatus[value.MatchStatusInterested.String()]

	return snap, nil
}

// TopDeals возвращает лучшие сделки по оценке.
func (s *Service) TopDeals(ctx context.Context, limit int) ([]entity.Deal, error) {
	if limit <= 0 {
		limit = s.topLimit
	}

	deals, err := s.deals.List(ctx, entity.DealFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list top deals: %w", err)
	}

	return deals, nil
}
