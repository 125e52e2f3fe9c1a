package server

import (
	"context"
	"fmt"
	"net/http"

	"dealflow/internal/domain/service/stats"
	"dealflow/pkg/httpx/reply"
)

type StatsService interface {
	Snapshot(ctx context.Context) (stats.Snapshot, error)
}

type AdminServer struct {
	statsService StatsService
}

func NewAdminServer(statsService StatsService) AdminServer {
	return AdminServer{
		statsService: statsService,
	}
}

func (s AdminServer) getV1AdminStats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snap, err := s.statsService.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("statsService.Snapshot: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStats(snap))

	return nil
}
