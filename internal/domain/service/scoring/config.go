package scoring

import (
	"time"

	"github.com/shopspring/decimal"

	"dealflow/internal/domain/service/keywords"
	"dealflow/internal/domain/value"
)

// DiscountTier срабатывает, если скидка не меньше MinPercent.
type DiscountTier struct {
	MinPercent float64
	Points     int
	Label      string
}

// UrgencyTier срабатывает, если найдено не меньше MinCount ключевых фраз.
type UrgencyTier struct {
	MinCount int
	Points   int
	Label    string
}

// PriceBand — включительный диапазон цены.
type PriceBand struct {
	Min    decimal.Decimal
	Max    decimal.Decimal
	Points int
	Label  string
}

// Config — таблицы и пороги модели оценки. Уровни перебираются по порядку,
// срабатывает первый подходящий.
type Config struct {
	Base int

	DiscountTiers     []DiscountTier
	OverpricedPenalty int

	Keywords     keywords.Detector
	UrgencyTiers []UrgencyTier

	PriceBands   []PriceBand
	CheapBelow   decimal.Decimal
	CheapPenalty int

	CategoryPoints        map[value.Category]int
	DefaultCategoryPoints int

	SourcePoints        map[value.Source]int
	DefaultSourcePoints int

	// AdvisorLimit ограничивает поправку советника: [-AdvisorLimit, +AdvisorLimit].
	AdvisorLimit   int
	AdvisorTimeout time.Duration

	MinScore int
	MaxScore int
}

func DefaultConfig() Config {
	return Config{
		Base: 50,
		DiscountTiers: []DiscountTier{
			{MinPercent: 40, Points: 30, Label: "Excellent discount"},
			{MinPercent: 25, Points: 20, Label: "Good discount"},
			{MinPercent: 15, Points: 10, Label: "Moderate discount"},
		},
		OverpricedPenalty: -20,
		Keywords:          keywords.Default(),
		UrgencyTiers: []UrgencyTier{
			{MinCount: 3, Points: 25, Label: "High urgency"},
			{MinCount: 2, Points: 15, Label: "Medium urgency"},
			{MinCount: 1, Points: 8, Label: "Low urgency"},
		},
		PriceBands: []PriceBand{
			{Min: decimal.NewFromInt(10000), Max: decimal.NewFromInt(500000), Points: 15, Label: "Ideal price range"},
			{Min: decimal.NewFromInt(5000), Max: decimal.NewFromInt(1000000), Points: 10, Label: "Good price range"},
		},
		CheapBelow:   decimal.NewFromInt(1000),
		CheapPenalty: -10,
		CategoryPoints: map[value.Category]int{
			value.CategoryRealEstate:     10,
			value.CategoryHeavyEquipment: 9,
			value.CategoryVehicles:       8,
			value.CategoryBusinessAssets: 8,
			value.CategoryLuxuryItems:    7,
			value.CategoryWholesale:      6,
		},
		DefaultCategoryPoints: 5,
		SourcePoints: map[value.Source]int{
			value.SourceAutotrader:          9,
			value.SourceFacebookMarketplace: 8,
			value.SourceFSBO:                8,
			value.SourceAuction:             7,
			value.SourceCraigslist:          6,
			value.SourceDealer:              5,
		},
		DefaultSourcePoints: 5,
		AdvisorLimit:        10,
		AdvisorTimeout:      5 * time.Second,
		MinScore:            0,
		MaxScore:            100,
	}
}
