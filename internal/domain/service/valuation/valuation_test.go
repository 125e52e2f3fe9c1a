package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain/service/valuation"
	"dealflow/internal/domain/value"
)

func TestEstimate(t *testing.T) {
	rq := require.New(t)

	estimator := valuation.NewDefault()
	price := decimal.NewFromInt(100000)

	testCases := []struct {
		category value.Category
		expected string
	}{
		{category: value.CategoryRealEstate, expected: "130000"},
		{category: value.CategoryVehicles, expected: "120000"},
		{category: value.CategoryHeavyEquipment, expected: "125000"},
		{category: value.CategoryLuxuryItems, expected: "140000"},
		{category: value.CategoryBusinessAssets, expected: "130000"},
		{category: value.CategoryWholesale, expected: "115000"},
		{category: "boats", expected: "120000"},
	}

	for _, tc := range testCases {
		t.Run(tc.category.String(), func(*testing.T) {
			got := estimator.Estimate(tc.category, price)
			rq.True(decimal.RequireFromString(tc.expected).Equal(got), "got %s", got)
		})
	}
}

func TestEstimateCustomTable(t *testing.T) {
	rq := require.New(t)

	estimator := valuation.New(valuation.Multipliers{
		ByCategory: map[value.Category]decimal.Decimal{"boats": decimal.NewFromInt(2)},
		Default:    decimal.NewFromInt(1),
	})

	rq.True(decimal.NewFromInt(20).Equal(estimator.Estimate("boats", decimal.NewFromInt(10))))
	rq.True(decimal.NewFromInt(10).Equal(estimator.Estimate(value.CategoryVehicles, decimal.NewFromInt(10))))
	rq.True(decimal.Zero.Equal(estimator.Estimate("boats", decimal.Zero)))
}

func TestEstimateRoundsToCents(t *testing.T) {
	rq := require.New(t)

	estimator := valuation.NewDefault()

	testCases := []struct {
		category value.Category
		price    string
		expected string
	}{
		{category: value.CategoryWholesale, price: "33.33", expected: "38.33"},    // 38.3295
		{category: value.CategoryLuxuryItems, price: "10.01", expected: "14.01"},  // 14.014
		{category: value.CategoryHeavyEquipment, price: "0.99", expected: "1.24"}, // 1.2375
	}

	for _, tc := range testCases {
		got := estimator.Estimate(tc.category, decimal.RequireFromString(tc.price))
		rq.True(decimal.RequireFromString(tc.expected).Equal(got), "got %s", got)
	}
}
