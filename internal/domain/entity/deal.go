package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"dealflow/internal/domain/value"
)

const (
	DealStatusActive   = "active"
	DealStatusSold     = "sold"
	DealStatusExpired  = "expired"
	DealStatusArchived = "archived"
)

type Deal struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	// MarketValue после оценки считается достоверной для скоринга.
	MarketValue          *decimal.Decimal `json:"market_value,omitempty"`
	MarketValueEstimated bool             `json:"market_value_estimated"`
	Category             value.Category   `json:"category"`
	Location             string           `json:"location,omitempty"`
	Source               value.Source     `json:"source"`
	SourceURL            string           `json:"source_url,omitempty"`
	ImageURL             string           `json:"image_url,omitempty"`
	ContactInfo          string           `json:"contact_info,omitempty"`
	Status               string           `json:"status"`

	// Вычисляемые поля, заполняются только через ApplyScore.
	AIScore            int              `json:"ai_score"`
	ScoreFactors       []string         `json:"score_factors"`
	UrgencyKeywords    []string         `json:"urgency_keywords"`
	DiscountPercentage *float64         `json:"discount_percentage,omitempty"`
	ProfitPotential    *decimal.Decimal `json:"profit_potential,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyScore переносит результат оценки в сделку.
func (d *Deal) ApplyScore(r ScoreResult) {
	d.AIScore = r.Score
	d.ScoreFactors = r.Factors
	d.UrgencyKeywords = r.UrgencyKeywords
	d.DiscountPercentage = r.Discount
	d.ProfitPotential = r.Profit
}

// NewDeal — входные данные для приёма сделки.
type NewDeal struct {
	Title       string
	Description string
	Price       decimal.Decimal
	MarketValue *decimal.Decimal
	Category    value.Category
	Location    string
	Source      value.Source
	SourceURL   string
	ImageURL    string
	ContactInfo string
}

// DealUpdate — частичное обновление, nil означает "не менять".
type DealUpdate struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	MarketValue *decimal.Decimal
	Category    *value.Category
	Location    *string
	Source      *value.Source
	SourceURL   *string
	ImageURL    *string
	ContactInfo *string
	Status      *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u DealUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil && u.MarketValue == nil &&
		u.Category == nil && u.Location == nil && u.Source == nil && u.SourceURL == nil &&
		u.ImageURL == nil && u.ContactInfo == nil && u.Status == nil
}

// Apply применяет изменения к сделке. Новая рыночная цена снимает флаг оценки.
func (u DealUpdate) Apply(d *Deal) {
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Price != nil {
		d.Price = *u.Price
	}
	if u.MarketValue != nil {
		mv := *u.MarketValue
		d.MarketValue = &mv
		d.MarketValueEstimated = false
	}
	if u.Category != nil {
		d.Category = *u.Category
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.Source != nil {
		d.Source = *u.Source
	}
	if u.SourceURL != nil {
		d.SourceURL = *u.SourceURL
	}
	if u.ImageURL != nil {
		d.ImageURL = *u.ImageURL
	}
	if u.ContactInfo != nil {
		d.ContactInfo = *u.ContactInfo
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
}

type DealFilter struct {
	Category value.Category
	MinScore *int
	Status   string
	Limit    int
	Offset   int
}
