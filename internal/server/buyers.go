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

type BuyerService interface {
	Create(ctx context.Context, b entity.Buyer) (*entity.Buyer, error)
	Get(ctx context.Context, id int64) (*entity.Buyer, error)
	List(ctx context.Context, filter entity.BuyerFilter) ([]entity.Buyer, error)
	Update(ctx context.Context, id int64, upd entity.BuyerUpdate) (*entity.Buyer, error)
	Delete(ctx context.Context, id int64) error
	Unsubscribe(ctx context.Context, id int64) (*entity.Buyer, error)
	Preferences(ctx context.Context, id int64) (entity.BuyerPreferences, error)
}

type BuyerMatchLister interface {
	ListByBuyer(ctx context.Context, buyerID int64, filter entity.MatchFilter) ([]entity.MatchView, error)
}

type BuyerServer struct {
	buyerService BuyerService
	matches      BuyerMatchLister
}

func NewBuyerServer(buyerService BuyerService, matches BuyerMatchLister) BuyerServer {
	return BuyerServer{
		buyerService: buyerService,
		matches:      matches,
	}
}

func (s BuyerServer) getV1Buyers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	active, err := queryBool(r, "active")
	if err != nil {
		return err
	}

	buyers, err := s.buyerService.List(ctx, entity.BuyerFilter{
		IsActive:         active,
		SubscriptionTier: value.SubscriptionTier(r.URL.Query().Get("tier")),
	})
	if err != nil {
		return fmt.Errorf("buyerService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BuyerList{
		Buyers: lox.Map(buyers, newRESTBuyer),
		Count:  len(buyers),
	})

	return nil
}

func (s BuyerServer) postV1Buyers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateBuyerRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	b, err := s.buyerService.Create(ctx, newDomainBuyer(request))
	if err != nil {
		return fmt.Errorf("buyerService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTBuyer(*b))

	return nil
}

func (s BuyerServer) getV1Buyer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	b, err := s.buyerService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("buyerService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBuyer(*b))

	return nil
}

func (s BuyerServer) putV1Buyer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	var request rest.UpdateBuyerRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	b, err := s.buyerService.Update(ctx, id, newDomainBuyerUpdate(request))
	if err != nil {
		return fmt.Errorf("buyerService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBuyer(*b))

	return nil
}

func (s BuyerServer) deleteV1Buyer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	if err = s.buyerService.Delete(ctx, id); err != nil {
		return fmt.Errorf("buyerService.Delete: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (s BuyerServer) getV1BuyerMatches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	filter, err := matchFilterFromQuery(r)
	if err != nil {
		return err
	}

	views, err := s.matches.ListByBuyer(ctx, id, filter)
	if err != nil {
		return fmt.Errorf("matches.ListByBuyer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatchList(views))

	return nil
}

func (s BuyerServer) getV1BuyerPreferences(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	prefs, err := s.buyerService.Preferences(ctx, id)
	if err != nil {
		return fmt.Errorf("buyerService.Preferences: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPreferences(prefs))

	return nil
}

func (s BuyerServer) postV1BuyerUnsubscribe(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	b, err := s.buyerService.Unsubscribe(ctx, id)
	if err != nil {
		return fmt.Errorf("buyerService.Unsubscribe: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTBuyer(*b))

	return nil
}
