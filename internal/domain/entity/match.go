package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"dealflow/internal/domain/value"
)

// Match — пара сделка/покупатель. На пару (DealID, BuyerID) не более одной записи.
type Match struct {
	ID           int64             `json:"id"`
	DealID       int64             `json:"deal_id"`
	BuyerID      int64             `json:"buyer_id"`
	MatchScore   int               `json:"match_score"`
	Status       value.MatchStatus `json:"status"`
	NotifiedAt   *time.Time        `json:"notified_at,omitempty"`
	ViewedAt     *time.Time        `json:"viewed_at,omitempty"`
	InterestedAt *time.Time        `json:"interested_at,omitempty"`
	RejectedAt   *time.Time        `json:"rejected_at,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// MatchView — совпадение вместе с полями сделки и покупателя для выдачи.
type MatchView struct {
	Match

	BuyerName    string          `json:"buyer_name,omitempty"`
	BuyerEmail   string          `json:"buyer_email,omitempty"`
	DealTitle    string          `json:"title,omitempty"`
	DealPrice    decimal.Decimal `json:"price"`
	DealAIScore  int             `json:"ai_score"`
	DealCategory value.Category  `json:"category,omitempty"`
	DealLocation string          `json:"location,omitempty"`
}

type MatchFilter struct {
	Status   value.MatchStatus
	MinScore *int
	Limit    int
}

// MatchNotice — всё, что нужно уведомителю для отправки одного совпадения.
type MatchNotice struct {
	Match Match
	Deal  Deal
	Buyer Buyer
}

// MatchReport — итог подбора покупателей для одной сделки.
type MatchReport struct {
	DealID   int64   `json:"deal_id"`
	Created  []Match `json:"matches"`
	Notified int     `json:"notified"`
	Failed   int     `json:"failed"`
}

const (
	NotificationTypeDealMatch = "deal_match"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

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
