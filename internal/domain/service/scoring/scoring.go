package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"dealflow/internal/domain/entity"
	"dealflow/pkg/logx"
)

const FallbackFactor = "Error calculating score"

var errAdvisorPanic = errors.New("advisor panicked")

type Scorer struct {
	cfg      Config
	advisor  Advisor
	evaluate func(deal entity.Deal) (int, entity.ScoreResult)
}

// New создаёт оценщик. AdvisorTimeout <= 0 заменяется значением по умолчанию:
// вызов советника всегда ограничен по времени.
func New(cfg Config) *Scorer {
	if cfg.AdvisorTimeout <= 0 {
		cfg.AdvisorTimeout = DefaultConfig().AdvisorTimeout
	}

	s := &Scorer{
		cfg:     cfg,
		advisor: NopAdvisor{},
	}
	s.evaluate = s.rules

	return s
}

func NewDefault() *Scorer {
	return New(DefaultConfig())
}

func (s *Scorer) WithAdvisor(a Advisor) *Scorer {
	if a == nil {
		a = NopAdvisor{}
	}
	s.advisor = a
	return s
}

func (s *Scorer) Config() Config {
	return s.cfg
}

// Fallback — результат на случай сбоя оценки.
func Fallback(reason string) entity.ScoreResult {
	return entity.ScoreResult{
		Score:           50,
		Factors:         []string{FallbackFactor},
		UrgencyKeywords: []string{},
		Err:             reason,
	}
}

// Score оценивает сделку по шкале 0-100. Никогда не возвращает ошибку:
// при сбое отдаёт Fallback. Без советника результат детерминирован.
func (s *Scorer) Score(ctx context.Context, deal entity.Deal) (result entity.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			logger(ctx).Error("deal scoring failed",
				slog.Int64(logx.FieldDealID, deal.ID),
				slog.Any(logx.FieldError, r),
			)
			result = Fallback(fmt.Sprint(r))
		}
	}()

	raw, result := s.evaluate(deal)

	scored := deal
	scored.DiscountPercentage = result.Discount
	scored.ProfitPotential = result.Profit
	scored.UrgencyKeywords = result.UrgencyKeywords

	if adj := s.advise(ctx, scored); adj != 0 {
		raw += adj
		result.Factors = append(result.Factors, fmt.Sprintf("AI adjustment: %+d", adj))
	}

	result.Score = clamp(raw, s.cfg.MinScore, s.cfg.MaxScore)
	return result
}

// rules считает детерминированную часть без ограничения диапазона.
func (s *Scorer) rules(deal entity.Deal) (int, entity.ScoreResult) {
	score := s.cfg.Base
	result := entity.ScoreResult{Factors: []string{}}

	if deal.MarketValue != nil && !deal.MarketValue.IsZero() && !deal.Price.IsZero() {
		mv := *deal.MarketValue
		discount := mv.Sub(deal.Price).Div(mv).Mul(decimal.NewFromInt(100)).InexactFloat64()
		profit := mv.Sub(deal.Price)
		result.Discount = &discount
		result.Profit = &profit

		points, factor := s.discountPoints(discount)
		score += points
		if factor != "" {
			result.Factors = append(result.Factors, factor)
		}
	}

	result.UrgencyKeywords = s.cfg.Keywords.Detect(deal.Title, deal.Description)
	if points, factor := s.urgencyPoints(len(result.UrgencyKeywords)); factor != "" {
		score += points
		result.Factors = append(result.Factors, factor)
	}

	if points, factor := s.pricePoints(deal.Price); factor != "" {
		score += points
		result.Factors = append(result.Factors, factor)
	}

	score += s.categoryPoints(deal)
	result.Factors = append(result.Factors, "Category: "+deal.Category.String())

	if points := s.sourcePoints(deal); points != 0 {
		score += points
		result.Factors = append(result.Factors, "Source: "+deal.Source.String())
	}

	return score, result
}

func (s *Scorer) discountPoints(discount float64) (int, string) {
	for _, tier := range s.cfg.DiscountTiers {
		if discount >= tier.MinPercent {
			return tier.Points, fmt.Sprintf("%s: %.1f%%", tier.Label, discount)
		}
	}
	if discount < 0 {
		return s.cfg.OverpricedPenalty, fmt.Sprintf("Overpriced by %.1f%%", -discount)
	}
	return 0, ""
}

func (s *Scorer) urgencyPoints(count int) (int, string) {
	noun := "keywords"
	if count == 1 {
		noun = "keyword"
	}
	for _, tier := range s.cfg.UrgencyTiers {
		if count >= tier.MinCount {
			return tier.Points, fmt.Sprintf("%s: %d %s", tier.Label, count, noun)
		}
	}
	return 0, ""
}

func (s *Scorer) pricePoints(price decimal.Decimal) (int, string) {
	for _, band := range s.cfg.PriceBands {
		if price.GreaterThanOrEqual(band.Min) && price.LessThanOrEqual(band.Max) {
			return band.Points, band.Label
		}
	}
	if price.LessThan(s.cfg.CheapBelow) {
		return s.cfg.CheapPenalty, "Too cheap - possible scam"
	}
	return 0, ""
}

func (s *Scorer) categoryPoints(deal entity.Deal) int {
	if p, ok := s.cfg.CategoryPoints[deal.Category]; ok {
		return p
	}
	return s.cfg.DefaultCategoryPoints
}

func (s *Scorer) sourcePoints(deal entity.Deal) int {
	if p, ok := s.cfg.SourcePoints[deal.Source]; ok {
		return p
	}
	return s.cfg.DefaultSourcePoints
}

// advise спрашивает советника с таймаутом. Любой сбой даёт поправку 0.
func (s *Scorer) advise(ctx context.Context, deal entity.Deal) int {
	if _, nop := s.advisor.(NopAdvisor); nop {
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.AdvisorTimeout)
	defer cancel()

	type answer struct {
		adj int
		err error
	}
	done := make(chan answer, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- answer{err: fmt.Errorf("%w: %v", errAdvisorPanic, r)}
			}
		}()
		adj, err := s.advisor.Adjust(ctx, deal)
		done <- answer{adj: adj, err: err}
	}()

	select {
	case <-ctx.Done():
		logger(ctx).Warn("advisor timed out",
			slog.Int64(logx.FieldDealID, deal.ID),
			logx.Error(ctx.Err()),
		)
		return 0
	case a := <-done:
		if a.err != nil {
			logger(ctx).Warn("advisor adjustment failed",
				slog.Int64(logx.FieldDealID, deal.ID),
				logx.Error(a.err),
			)
			return 0
		}
		return clamp(a.adj, -s.cfg.AdvisorLimit, s.cfg.AdvisorLimit)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
