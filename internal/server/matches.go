package server

import (
	"context"
	"fmt"
	"net/http"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/httpx/reply"
	"dealflow/pkg/httpx/req"
	"dealflow/pkg/lox"
	"dealflow/pkg/rest"
)

type MatchService interface {
	Get(ctx context.Context, id int64) (*entity.Match, error)
	List(ctx context.Context, filter entity.MatchFilter) ([]entity.MatchView, error)
	UpdateStatus(ctx context.Context, id int64, status value.MatchStatus, notes *string) (*entity.Match, error)
	Track(ctx context.Context, id int64, action value.TrackAction) (*entity.Match, error)
}

type NotificationLister interface {
	ListByMatch(ctx context.Context, matchID int64) ([]entity.Notification, error)
}

type MatchServer struct {
	matchService  MatchService
	notifications NotificationLister
}

func NewMatchServer(matchService MatchService, notifications NotificationLister) MatchServer {
	return MatchServer{
		matchService:  matchService,
		notifications: notifications,
	}
}

func (s MatchServer) getV1Matches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	filter, err := matchFilterFromQuery(r)
	if err != nil {
		return err
	}

	views, err := s.matchService.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("matchService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatchList(views))

	return nil
}

func (s MatchServer) getV1Match(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidMatchID)
	if err != nil {
		return err
	}

	m, err := s.matchService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("matchService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatch(*m))

	return nil
}

func (s MatchServer) putV1Match(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidMatchID)
	if err != nil {
		return err
	}

	var request rest.UpdateMatchRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	m, err := s.matchService.UpdateStatus(ctx, id, value.MatchStatus(request.Status), request.Notes)
	if err != nil {
		return fmt.Errorf("matchService.UpdateStatus: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatch(*m))

	return nil
}

func (s MatchServer) getV1MatchNotifications(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidMatchID)
	if err != nil {
		return err
	}

	// Совпадение должно существовать, пустой журнал не отличить от чужого id.
	if _, err = s.matchService.Get(ctx, id); err != nil {
		return fmt.Errorf("matchService.Get: %w", err)
	}

	notifications, err := s.notifications.ListByMatch(ctx, id)
	if err != nil {
		return fmt.Errorf("notifications.ListByMatch: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.NotificationList{
		Notifications: lox.Map(notifications, newRESTNotification),
		Count:         len(notifications),
	})

	return nil
}

func (s MatchServer) getV1MatchTrack(w http.ResponseWriter, r *http.Request) error {
	return s.track(w, r, value.TrackAction(r.URL.Query().Get("action")))
}

func (s MatchServer) postV1MatchTrack(w http.ResponseWriter, r *http.Request) error {
	var request rest.TrackRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.track(w, r, value.TrackAction(request.Action))
}

func (s MatchServer) track(w http.ResponseWriter, r *http.Request, action value.TrackAction) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidMatchID)
	if err != nil {
		return err
	}

	m, err := s.matchService.Track(ctx, id, action)
	if err != nil {
		return fmt.Errorf("matchService.Track: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.TrackResponse{
		Message: "Action tracked",
		Match:   newRESTMatch(*m),
	})

	return nil
}

func matchFilterFromQuery(r *http.Request) (entity.MatchFilter, error) {
	minScore, err := queryInt(r, "min_score")
	if err != nil {
		return entity.MatchFilter{}, err
	}

	limit, err := queryIntOr(r, "limit", 0)
	if err != nil {
		return entity.MatchFilter{}, err
	}

	return entity.MatchFilter{
		Status:   value.MatchStatus(r.URL.Query().Get("status")),
		MinScore: minScore,
		Limit:    limit,
	}, nil
}
