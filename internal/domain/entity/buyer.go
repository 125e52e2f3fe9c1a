package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"dealflow/internal/domain/value"
)

type Buyer struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone,omitempty"`
	TelegramChatID int64            `json:"telegram_chat_id,omitempty"`
	Categories     []value.Category `json:"categories"` // пусто: любые
	BudgetMin      *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax      *decimal.Decimal `json:"budget_max,omitempty"`
	Locations      []string         `json:"locations"` // пусто: любые
	IsActive       bool             `json:"is_active"`

	SubscriptionTier value.SubscriptionTier `json:"subscription_tier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasBudget — заданы обе границы бюджета.
func (b Buyer) HasBudget() bool {
	return b.BudgetMin != nil && b.BudgetMax != nil
}

// Preferences возвращает сводку предпочтений покупателя.
func (b Buyer) Preferences() BuyerPreferences {
	categories := b.Categories
	if categories == nil {
		categories = []value.Category{}
	}

	locations := b.Locations
	if locations == nil {
		locations = []string{}
	}

	return BuyerPreferences{
		ID:               b.ID,
		Name:             b.Name,
		Categories:       categories,
		BudgetMin:        b.BudgetMin,
		BudgetMax:        b.BudgetMax,
		Locations:        locations,
		SubscriptionTier: b.SubscriptionTier,
	}
}

type BuyerPreferences struct {
	ID               int64                  `json:"id"`
	Name             string                 `json:"name"`
	Categories       []value.Category       `json:"categories"`
	BudgetMin        *decimal.Decimal       `json:"budget_min"`
	BudgetMax        *decimal.Decimal       `json:"budget_max"`
	Locations        []string               `json:"locations"`
	SubscriptionTier value.SubscriptionTier `json:"subscription_tier"`
}

type BuyerUpdate struct {
	Name             *string
	Phone            *string
	TelegramChatID   *int64
	Categories       *[]value.Category
	BudgetMin        *decimal.Decimal
	BudgetMax        *decimal.Decimal
	Locations        *[]string
	IsActive         *bool
	SubscriptionTier *value.SubscriptionTier
}

func (u BuyerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.TelegramChatID == nil && u.Categories == nil &&
		u.BudgetMin == nil && u.BudgetMax == nil && u.Locations == nil && u.IsActive == nil &&
		u.SubscriptionTier == nil
}

func (u BuyerUpdate) Apply(b *Buyer) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Phone != nil {
		b.Phone = *u.Phone
	}
	if u.TelegramChatID != nil {
		b.TelegramChatID = *u.TelegramChatID
	}
	if u.Categories != nil {
		b.Categories = *u.Categories
	}
	if u.BudgetMin != nil {
		v := *u.BudgetMin
		b.BudgetMin = &v
	}
	if u.BudgetMax != nil {
		v := *u.BudgetMax
		b.BudgetMax = &v
	}
	if u.Locations != nil {
		b.Locations = *u.Locations
	}
	if u.IsActive != nil {
		b.IsActive = *u.IsActive
	}
	if u.SubscriptionTier != nil {
		b.SubscriptionTier = *u.SubscriptionTier
	}
}

type BuyerFilter struct {
	IsActive         *bool
	SubscriptionTier value.SubscriptionTier
}
