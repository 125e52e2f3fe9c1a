package handler

import (
	"context"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/deal"
	"dealflow/internal/domain/service/stats"
)

//go:generate moq -rm -out mocks.gen.go . StatsService DealService Sweeper

const topLimit = 10

type StatsService interface {
	Snapshot(ctx context.Context) (stats.Snapshot, error)
	TopDeals(ctx context.Context, limit int) ([]entity.Deal, error)
	HotScore() int
}

type DealService interface {
	Get(ctx context.Context, id int64) (*entity.Deal, error)
	Rescore(ctx context.Context, id int64) (deal.IngestResult, error)
}

type Sweeper interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
	SweepOnce(ctx context.Context) int
}

type Handler struct {
	stats   StatsService
	deals   DealService
	sweeper Sweeper
}

func New(statsService StatsService, dealService DealService, sweeper Sweeper) *Handler {
	return &Handler{
		stats:   statsService,
		deals:   dealService,
		sweeper: sweeper,
	}
}
