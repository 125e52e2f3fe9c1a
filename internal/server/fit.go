package server

import (
	"context"
	"fmt"
	"net/http"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/matching"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/httpx/reply"
	"dealflow/pkg/rest"
)

// FitScorer разбирает совпадение по признакам без записи в хранилище.
type FitScorer interface {
	Explain(deal entity.Deal, buyer entity.Buyer) matching.Explanation
	Qualifies(score int) bool
}

type FitServer struct {
	deals  DealService
	buyers BuyerService
	scorer FitScorer
}

func NewFitServer(deals DealService, buyers BuyerService, scorer FitScorer) FitServer {
	return FitServer{
		deals:  deals,
		buyers: buyers,
		scorer: scorer,
	}
}

func (s FitServer) getV1DealFit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	dealID, err := pathID(r, errcodes.InvalidDealID)
	if err != nil {
		return err
	}

	buyerID, err := pathInt64(r, "buyer_id", errcodes.InvalidBuyerID)
	if err != nil {
		return err
	}

	fit, err := s.explain(ctx, dealID, buyerID)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, fit)

	return nil
}

func (s FitServer) explain(ctx context.Context, dealID, buyerID int64) (rest.MatchFit, error) {
	d, err := s.deals.Get(ctx, dealID)
	if err != nil {
		return rest.MatchFit{}, fmt.Errorf("deals.Get: %w", err)
	}

	b, err := s.buyers.Get(ctx, buyerID)
	if err != nil {
		return rest.MatchFit{}, fmt.Errorf("buyers.Get: %w", err)
	}

	explanation := s.scorer.Explain(*d, *b)

	factors := explanation.Factors
	if factors == nil {
		factors = []string{}
	}

	return rest.MatchFit{
		DealID:     d.ID,
		BuyerID:    b.ID,
		MatchScore: explanation.Score,
		Factors:    factors,
		Qualifies:  s.scorer.Qualifies(explanation.Score),
	}, nil
}
