package scoring_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/scoring"
	"dealflow/internal/domain/value"
	"dealflow/pkg/tests"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func motivatedDeal() entity.Deal {
	return entity.Deal{
		ID:          1,
		Title:       "Must sell, divorce, motivated seller",
		Price:       decimal.NewFromInt(60000),
		MarketValue: dec(100000),
		Category:    value.CategoryRealEstate,
		Source:      value.SourceFSBO,
	}
}

func TestScore_EndToEnd(t *testing.T) {
	rq := require.New(t)

	res := scoring.NewDefault().Score(context.Background(), motivatedDeal())

	rq.Equal(100, res.Score)
	rq.False(res.Failed())
	rq.Equal([]string{
		"Excellent discount: 40.0%",
		"High urgency: 3 keywords",
		"Ideal price range",
		"Category: real-estate",
		"Source: fsbo",
	}, res.Factors)
	rq.Equal([]string{"must sell", "motivated", "divorce"}, res.UrgencyKeywords)
	rq.NotNil(res.Discount)
	rq.InDelta(40.0, *res.Discount, 1e-9)
	rq.NotNil(res.Profit)
	rq.True(res.Profit.Equal(decimal.NewFromInt(40000)))
}

func TestScore_Components(t *testing.T) {
	rq := require.New(t)
	scorer := scoring.NewDefault()

	testCases := []struct {
		name     string
		deal     entity.Deal
		expected int
		factors  []string
	}{
		{
			name: "No market value, unknown category and source",
			deal: entity.Deal{
				Title:    "Old boat",
				Price:    decimal.NewFromInt(2000),
				Category: "boats",
				Source:   "newspaper",
			},
			// 50 + 5 + 5
			expected: 60,
			factors:  []string{"Category: boats", "Source: newspaper"},
		},
		{
			name: "Overpriced and too cheap",
			deal: entity.Deal{
				Title:       "Watch",
				Price:       decimal.NewFromInt(900),
				MarketValue: dec(600),
				Category:    value.CategoryLuxuryItems,
				Source:      value.SourceDealer,
			},
			// 50 - 20 - 10 + 7 + 5
			expected: 32,
			factors: []string{
				"Overpriced by 50.0%",
				"Too cheap - possible scam",
				"Category: luxury-items",
				"Source: dealer",
			},
		},
		{
			name: "Good discount, one keyword, good price band",
			deal: entity.Deal{
				Title:       "Excavator OBO",
				Price:       decimal.NewFromInt(750000),
				MarketValue: dec(1000000),
				Category:    value.CategoryHeavyEquipment,
				Source:      value.SourceAuction,
			},
			// 50 + 20 + 8 + 10 + 9 + 7 = 104
			expected: 100,
			factors: []string{
				"Good discount: 25.0%",
				"Low urgency: 1 keyword",
				"Good price range",
				"Category: heavy-equipment",
				"Source: auction",
			},
		},
		{
			name: "Moderate discount, two keywords",
			deal: entity.Deal{
				Title:       "Truck",
				Description: "Relocating, need gone",
				Price:       decimal.NewFromInt(17000),
				MarketValue: dec(20000),
				Category:    value.CategoryVehicles,
				Source:      value.SourceCraigslist,
			},
			// 50 + 10 + 15 + 15 + 8 + 6 = 104
			expected: 100,
			factors: []string{
				"Moderate discount: 15.0%",
				"Medium urgency: 2 keywords",
				"Ideal price range",
				"Category: vehicles",
				"Source: craigslist",
			},
		},
		{
			name: "Small discount gives no factor",
			deal: entity.Deal{
				Title:       "Pallets",
				Price:       decimal.NewFromInt(4500),
				MarketValue: dec(5000),
				Category:    value.CategoryWholesale,
				Source:      value.SourceAutotrader,
			},
			// 50 + 0 + 6 + 9
			expected: 65,
			factors:  []string{"Category: wholesale", "Source: autotrader"},
		},
		{
			name: "Zero price skips discount",
			deal: entity.Deal{
				Title:       "Free couch",
				Price:       decimal.Zero,
				MarketValue: dec(300),
				Category:    value.CategoryWholesale,
				Source:      value.SourceDealer,
			},
			// 50 - 10 + 6 + 5
			expected: 51,
			factors:  []string{"Too cheap - possible scam", "Category: wholesale", "Source: dealer"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			res := scorer.Score(context.Background(), tc.deal)
			rq.Equal(tc.expected, res.Score)
			rq.Equal(tc.factors, res.Factors)
		})
	}
}

func TestScore_Idempotent(t *testing.T) {
	rq := require.New(t)
	scorer := scoring.NewDefault()
	deal := motivatedDeal()
	deal.Price = decimal.NewFromInt(85000)

	first := scorer.Score(context.Background(), deal)
	second := scorer.Score(context.Background(), deal)

	rq.Equal(first, second)
}

func TestScore_DiscountMonotonic(t *testing.T) {
	rq := require.New(t)
	scorer := scoring.NewDefault()

	prev := -1
	for price := int64(150000); price >= 10000; price -= 2500 {
		deal := entity.Deal{
			Title:       "Duplex",
			Price:       decimal.NewFromInt(price),
			MarketValue: dec(100000),
			Category:    value.CategoryRealEstate,
			Source:      value.SourceDealer,
		}
		res := scorer.Score(context.Background(), deal)
		rq.GreaterOrEqual(res.Score, prev, "price %d", price)
		prev = res.Score
	}
}

func TestScore_Bounds(t *testing.T) {
	rq := require.New(t)
	rnd := tests.NewRandomizer()
	scorer := scoring.NewDefault()

	categories := []value.Category{
		value.CategoryRealEstate, value.CategoryVehicles, value.CategoryWholesale, "misc",
	}
	sources := []value.Source{value.SourceFSBO, value.SourceDealer, "unknown"}
	titles := []string{"", "urgent", "must sell asap obo", "nice car", "foreclosure short sale cash only"}

	for range 500 {
		deal := entity.Deal{
			Title:    tests.Pick(rnd, titles),
			Price:    decimal.NewFromFloat(rnd.Float64() * 2000000),
			Category: tests.Pick(rnd, categories),
			Source:   tests.Pick(rnd, sources),
		}
		if rnd.Bool() {
			deal.MarketValue = dec(int64(rnd.Intn(2000000)))
		}

		res := scorer.Score(context.Background(), deal)
		rq.GreaterOrEqual(res.Score, 0)
		rq.LessOrEqual(res.Score, 100)
		rq.False(res.Failed())
	}
}

func TestScore_Advisor(t *testing.T) {
	rq := require.New(t)

	base := entity.Deal{
		Title:    "Sofa",
		Price:    decimal.NewFromInt(3000),
		Category: value.CategoryWholesale,
		Source:   value.SourceDealer,
	}
	// 50 + 6 + 5
	const deterministic = 61

	testCases := []struct {
		name     string
		advisor  scoring.Advisor
		expected int
		factor   string
	}{
		{
			name: "Positive adjustment",
			advisor: scoring.AdvisorFunc(func(context.Context, entity.Deal) (int, error) {
				return 7, nil
			}),
			expected: deterministic + 7,
			factor:   "AI adjustment: +7",
		},
		{
			name: "Clamped to limit",
			advisor: scoring.AdvisorFunc(func(context.Context, entity.Deal) (int, error) {
				return -42, nil
			}),
			expected: deterministic - 10,
			factor:   "AI adjustment: -10",
		},
		{
			name: "Failure contributes nothing",
			advisor: scoring.AdvisorFunc(func(context.Context, entity.Deal) (int, error) {
				return 9, errors.New("quota exceeded")
			}),
			expected: deterministic,
		},
		{
			name: "Panic contributes nothing",
			advisor: scoring.AdvisorFunc(func(context.Context, entity.Deal) (int, error) {
				panic("boom")
			}),
			expected: deterministic,
		},
		{
			name: "Slow advisor is abandoned",
			advisor: scoring.AdvisorFunc(func(context.Context, entity.Deal) (int, error) {
				time.Sleep(time.Second)
				return 10, nil
			}),
			expected: deterministic,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			cfg := scoring.DefaultConfig()
			cfg.AdvisorTimeout = 50 * time.Millisecond

			res := scoring.New(cfg).WithAdvisor(tc.advisor).Score(context.Background(), base)
			rq.Equal(tc.expected, res.Score)
			if tc.factor != "" {
				rq.Contains(res.Factors, tc.factor)
			} else {
				rq.NotContains(res.Factors, "AI adjustment: +9")
				rq.Len(res.Factors, 2)
			}
		})
	}
}

func TestScore_AdvisorAlwaysHasDeadline(t *testing.T) {
	rq := require.New(t)

	for _, timeout := range []time.Duration{0, -time.Second} {
		cfg := scoring.DefaultConfig()
		cfg.AdvisorTimeout = timeout

		var remaining time.Duration
		advisor := scoring.AdvisorFunc(func(ctx context.Context, _ entity.Deal) (int, error) {
			deadline, ok := ctx.Deadline()
			if !ok {
				return 0, errors.New("no deadline")
			}
			remaining = time.Until(deadline)
			return 5, nil
		})

		scorer := scoring.New(cfg).WithAdvisor(advisor)
		rq.Equal(scoring.DefaultConfig().AdvisorTimeout, scorer.Config().AdvisorTimeout)

		res := scorer.Score(context.Background(), motivatedDeal())
		rq.Contains(res.Factors, "AI adjustment: +5")
		rq.Positive(remaining)
		rq.LessOrEqual(remaining, scoring.DefaultConfig().AdvisorTimeout)
	}
}

func TestScore_AdvisorSeesDiscount(t *testing.T) {
	rq := require.New(t)

	var seen entity.Deal
	advisor := scoring.AdvisorFunc(func(_ context.Context, d entity.Deal) (int, error) {
		seen = d
		return 0, nil
	})

	scoring.NewDefault().WithAdvisor(advisor).Score(context.Background(), motivatedDeal())

	rq.NotNil(seen.DiscountPercentage)
	rq.InDelta(40.0, *seen.DiscountPercentage, 1e-9)
	rq.Len(seen.UrgencyKeywords, 3)
}

func TestScore_Fallback(t *testing.T) {
	rq := require.New(t)

	res := scoring.Fallback("boom")
	rq.Equal(50, res.Score)
	rq.Equal([]string{scoring.FallbackFactor}, res.Factors)
	rq.True(res.Failed())
	rq.NotNil(res.UrgencyKeywords)
}
