package valuation

import (
	"github.com/shopspring/decimal"

	"dealflow/internal/domain/value"
)

// Multipliers — множитель рыночной цены к цене объявления по категориям.
type Multipliers struct {
	ByCategory map[value.Category]decimal.Decimal
	Default    decimal.Decimal
}

func DefaultMultipliers() Multipliers {
	return Multipliers{
		ByCategory: map[value.Category]decimal.Decimal{
			value.CategoryRealEstate:     decimal.RequireFromString("1.3"),
			value.CategoryVehicles:       decimal.RequireFromString("1.2"),
			value.CategoryHeavyEquipment: decimal.RequireFromString("1.25"),
			value.CategoryLuxuryItems:    decimal.RequireFromString("1.4"),
			value.CategoryBusinessAssets: decimal.RequireFromString("1.3"),
			value.CategoryWholesale:      decimal.RequireFromString("1.15"),
		},
		Default: decimal.RequireFromString("1.2"),
	}
}

// Estimator даёт оценку рыночной цены, когда её не прислали.
type Estimator struct {
	multipliers Multipliers
}

func New(m Multipliers) Estimator {
	return Estimator{multipliers: m}
}

func NewDefault() Estimator {
	return New(DefaultMultipliers())
}

// Точность денежных колонок в хранилище.
const moneyPlaces = 2

// Estimate возвращает price × множитель категории, округлённое до копеек.
func (e Estimator) Estimate(category value.Category, price decimal.Decimal) decimal.Decimal {
	return price.Mul(e.Multiplier(category)).Round(moneyPlaces)
}

func (e Estimator) Multiplier(category value.Category) decimal.Decimal {
	if m, ok := e.multipliers.ByCategory[category]; ok {
		return m
	}
	return e.multipliers.Default
}
