// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal Сделка с результатом оценки
type Deal struct {
	ID                   int64            `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Price                decimal.Decimal  `json:"price"`
	MarketValue          *decimal.Decimal `json:"market_value"`
	MarketValueEstimated bool             `json:"market_value_estimated"`
	Category             string           `json:"category"`
	Location             string           `json:"location"`
	Source               string           `json:"source"`
	SourceURL            string           `json:"source_url"`
	ImageURL             string           `json:"image_url"`
	ContactInfo          string           `json:"contact_info"`
	Status               string           `json:"status"`
	AIScore              int              `json:"ai_score"`
	ScoreFactors         []string         `json:"score_factors"`
	UrgencyKeywords      []string         `json:"urgency_keywords"`
	DiscountPercentage   *float64         `json:"discount_percentage"`
	ProfitPotential      *decimal.Decimal `json:"profit_potential"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// CreateDealRequest Новая сделка
type CreateDealRequest struct {
	Title       string           `json:"title" validate:"required,max=500"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	MarketValue *decimal.Decimal `json:"market_value"`
	Category    string           `json:"category" validate:"required"`
	Location    string           `json:"location"`
	Source      string           `json:"source" validate:"required"`
	SourceURL   string           `json:"source_url" validate:"omitempty,url"`
	ImageURL    string           `json:"image_url" validate:"omitempty,url"`
	ContactInfo string           `json:"contact_info"`
}

// UpdateDealRequest Частичное обновление сделки
type UpdateDealRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=500"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	MarketValue *decimal.Decimal `json:"market_value"`
	Category    *string          `json:"category"`
	Location    *string          `json:"location"`
	Source      *string          `json:"source"`
	SourceURL   *string          `json:"source_url" validate:"omitempty,url"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
	ContactInfo *string          `json:"contact_info"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active sold expired archived"`
}

// IngestResponse Результат приёма или переоценки сделки
type IngestResponse struct {
	Deal       Deal `json:"deal"`
	Dispatched bool `json:"matching_dispatched"`
}

// DealList Страница сделок
type DealList struct {
	Deals  []Deal `json:"deals"`
	Count  int    `json:"count"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// Buyer Покупатель
type Buyer struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	TelegramChatID   int64            `json:"telegram_chat_id"`
	Categories       []string         `json:"categories"`
	BudgetMin        *decimal.Decimal `json:"budget_min"`
	BudgetMax        *decimal.Decimal `json:"budget_max"`
	Locations        []string         `json:"locations"`
	IsActive         bool             `json:"is_active"`
	SubscriptionTier string           `json:"subscription_tier"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CreateBuyerRequest Регистрация покупателя
type CreateBuyerRequest struct {
	Name             string           `json:"name" validate:"required"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            string           `json:"phone"`
	TelegramChatID   int64            `json:"telegram_chat_id"`
	Categories       []string         `json:"categories"`
	BudgetMin        *decimal.Decimal `json:"budget_min"`
	BudgetMax        *decimal.Decimal `json:"budget_max"`
	Locations        []string         `json:"locations"`
	SubscriptionTier string           `json:"subscription_tier"`
}

// UpdateBuyerRequest Частичное обновление покупателя
type UpdateBuyerRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1"`
	Phone            *string          `json:"phone"`
	TelegramChatID   *int64           `json:"telegram_chat_id"`
	Categories       *[]string        `json:"categories"`
	BudgetMin        *decimal.Decimal `json:"budget_min"`
	BudgetMax        *decimal.Decimal `json:"budget_max"`
	Locations        *[]string        `json:"locations"`
	IsActive         *bool            `json:"is_active"`
	SubscriptionTier *string          `json:"subscription_tier"`
}

// BuyerList Список покупателей
type BuyerList struct {
	Buyers []Buyer `json:"buyers"`
	Count  int     `json:"count"`
}

// BuyerPreferences Критерии подбора покупателя
type BuyerPreferences struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Categories       []string         `json:"categories"`
	BudgetMin        *decimal.Decimal `json:"budget_min"`
	BudgetMax        *decimal.Decimal `json:"budget_max"`
	Locations        []string         `json:"locations"`
	SubscriptionTier string           `json:"subscription_tier"`
}

// Match Совпадение сделки и покупателя
type Match struct {
	ID           int64      `json:"id"`
	DealID       int64      `json:"deal_id"`
	BuyerID      int64      `json:"buyer_id"`
	MatchScore   int        `json:"match_score"`
	Status       string     `json:"status"`
	NotifiedAt   *time.Time `json:"notified_at"`
	ViewedAt     *time.Time `json:"viewed_at"`
	InterestedAt *time.Time `json:"interested_at"`
	RejectedAt   *time.Time `json:"rejected_at"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Поля из JOIN, заполнены в списках
	BuyerName    string           `json:"buyer_name,omitempty"`
	BuyerEmail   string           `json:"buyer_email,omitempty"`
	Title        string           `json:"title,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	AIScore      *int             `json:"ai_score,omitempty"`
	Category     string           `json:"category,omitempty"`
	DealLocation string           `json:"location,omitempty"`
}

// MatchList Список совпадений
type MatchList struct {
	Matches []Match `json:"matches"`
	Count   int     `json:"count"`
}

// Notification Попытка доставки уведомления о совпадении
type Notification struct {
	ID           int64     `json:"id"`
	MatchID      int64     `json:"match_id"`
	BuyerID      int64     `json:"buyer_id"`
	Type         string    `json:"type"`
	Channel      string    `json:"channel"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	SentAt       time.Time `json:"sent_at"`
}

// NotificationList Журнал уведомлений совпадения
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
}

// UpdateMatchRequest Смена статуса совпадения
type UpdateMatchRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// TrackRequest Действие покупателя
type TrackRequest struct {
	Action string `json:"action" validate:"required"`
}

// TrackResponse Результат отслеживания
type TrackResponse struct {
	Message string `json:"message"`
	Match   Match  `json:"match"`
}

// MatchReport Итог подбора покупателей
type MatchReport struct {
	DealID   int64   `json:"deal_id"`
	Matches  []Match `json:"matches"`
	Count    int     `json:"count"`
	Notified int     `json:"notified"`
	Failed   int     `json:"failed"`
}

// MatchFit Разбор совпадения сделки и покупателя
type MatchFit struct {
	DealID     int64    `json:"deal_id"`
	BuyerID    int64    `json:"buyer_id"`
	MatchScore int      `json:"match_score"`
	Factors    []string `json:"factors"`
	Qualifies  bool     `json:"qualifies"`
}

// Stats Сводка для администратора
type Stats struct {
	TotalDeals        int            `json:"total_deals"`
	HotDeals          int            `json:"hot_deals"`
	TotalBuyers       int            `json:"total_buyers"`
	ActiveBuyers      int            `json:"active_buyers"`
	TotalMatches      int            `json:"total_matches"`
	InterestedMatches int            `json:"interested_matches"`
	MatchesByStatus   map[string]int `json:"matches_by_status"`
	TopDeals          []Deal         `json:"top_deals"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
