package matching

import "github.com/shopspring/decimal"

type QualityTier struct {
	MinScore int
	Points   int
	Label    string
}

// Config — веса модели совпадения и порог отбора.
type Config struct {
	CategoryMatch int
	CategoryAny   int

	BudgetInRange int
	BudgetBelow   int
	BudgetNear    int
	BudgetAny     int
	// NearMissFactor — насколько цена может превысить верхнюю границу бюджета.
	NearMissFactor decimal.Decimal

	LocationMatch int
	LocationAny   int

	QualityTiers []QualityTier

	MaxScore int
	// Threshold — минимальная оценка, с которой совпадение сохраняется.
	Threshold int
	// Parallelism — сколько покупателей оценивается одновременно, <=1 — последовательно.
	Parallelism int
}

func DefaultConfig() Config {
	return Config{
		CategoryMatch:  30,
		CategoryAny:    15,
		BudgetInRange:  30,
		BudgetBelow:    10,
		BudgetNear:     15,
		BudgetAny:      15,
		NearMissFactor: decimal.RequireFromString("1.2"),
		LocationMatch:  20,
		LocationAny:    10,
		QualityTiers: []QualityTier{
			{MinScore: 80, Points: 20, Label: "Excellent deal quality"},
			{MinScore: 70, Points: 15, Label: "Good deal quality"},
			{MinScore: 60, Points: 10, Label: "Average deal quality"},
		},
		MaxScore:    100,
		Threshold:   60,
		Parallelism: 8,
	}
}
