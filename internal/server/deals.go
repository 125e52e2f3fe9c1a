package server

import (
	"context"
	"fmt"
	"net/http"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/deal"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/httpx/reply"
	"dealflow/pkg/httpx/req"
	"dealflow/pkg/lox"
	"dealflow/pkg/rest"
)

const defaultDealLimit = 50

type DealService interface {
	Ingest(ctx context.Context, in entity.NewDeal) (deal.IngestResult, error)
	Get(ctx context.Context, id int64) (*entity.Deal, error)
	List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error)
	Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error)
	Rescore(ctx context.Context, id int64) (deal.IngestResult, error)
	Delete(ctx context.Context, id int64) error
}

// DealMatcher запускает подбор покупателей синхронно, в обход очереди.
type DealMatcher interface {
	MatchDeal(ctx context.Context, dealID int64) (entity.MatchReport, error)
	ListByDeal(ctx context.Context, dealID int64) ([]entity.MatchView, error)
}

type DealServer struct {
	dealService DealService
	matcher     DealMatcher
}

func NewDealServer(dealService DealService, matcher DealMatcher) DealServer {
	return DealServer{
		dealService: dealService,
		matcher:     matcher,
	}
}

func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := queryIntOr(r, "limit", defaultDealLimit)
	if err != nil {
		return err
	}

	offset, err := queryIntOr(r, "offset", 0)
	if err != nil {
		return err
	}

	minScore, err := queryInt(r, "min_score")
	if err != nil {
		return err
	}

	query := r.URL.Query()

	deals, err := s.dealService.List(ctx, entity.DealFilter{
		Category: value.ParseCategory(query.Get("category")),
		MinScore: minScore,
		Status:   query.Get("status"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return fmt.Errorf("dealService.List: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DealList{
		Deals:  lox.Map(deals, newRESTDeal),
		Count:  len(deals),
		Limit:  limit,
		Offset: offset,
	})

	return nil
}

func (s DealServer) postV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.dealService.Ingest(ctx, newDomainNewDeal(request))
	if err != nil {
		return fmt.Errorf("dealService.Ingest: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.IngestResponse{
		Deal:       newRESTDeal(result.Deal),
		Dispatched: result.Dispatched,
	})

	return nil
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	d, err := s.dealService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("dealService.Get: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(*d))

	return nil
}

func (s DealServer) putV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	var request rest.UpdateDealRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	d, err := s.dealService.Update(ctx, id, newDomainDealUpdate(request))
	if err != nil {
		return fmt.Errorf("dealService.Update: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(*d))

	return nil
}

func (s DealServer) deleteV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	if err = s.dealService.Delete(ctx, id); err != nil {
		return fmt.Errorf("dealService.Delete: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

func (s DealServer) postV1DealRescore(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	result, err := s.dealService.Rescore(ctx, id)
	if err != nil {
		return fmt.Errorf("dealService.Rescore: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.IngestResponse{
		Deal:       newRESTDeal(result.Deal),
		Dispatched: result.Dispatched,
	})

	return nil
}

func (s DealServer) getV1DealMatches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	views, err := s.matcher.ListByDeal(ctx, id)
	if err != nil {
		return fmt.Errorf("matcher.ListByDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatchList(views))

	return nil
}

func (s DealServer) postV1DealMatches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	report, err := s.matcher.MatchDeal(ctx, id)
	if err != nil {
		return fmt.Errorf("matcher.MatchDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatchReport(report))

	return nil
}
