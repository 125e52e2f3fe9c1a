package persistence

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
)

// dealSchema — строка таблицы deals.
type dealSchema struct {
	ID                   int64               `db:"id"`
	Title                string              `db:"title"`
	Description          string              `db:"description"`
	Price                decimal.Decimal     `db:"price"`
	MarketValue          decimal.NullDecimal `db:"market_value"`
	MarketValueEstimated bool                `db:"market_value_estimated"`
	Category             string              `db:"category"`
	Location             string              `db:"location"`
	Source               string              `db:"source"`
	SourceURL            string              `db:"source_url"`
	ImageURL             string              `db:"image_url"`
	ContactInfo          string              `db:"contact_info"`
	AIScore              int                 `db:"ai_score"`
	ScoreFactors         pq.StringArray      `db:"score_factors"`
	UrgencyKeywords      pq.StringArray      `db:"urgency_keywords"`
	DiscountPercentage   sql.NullFloat64     `db:"discount_percentage"`
	ProfitPotential      decimal.NullDecimal `db:"profit_potential"`
	Status               string              `db:"status"`
	CreatedAt            time.Time           `db:"created_at"`
	UpdatedAt            time.Time           `db:"updated_at"`
}

func newDealSchema(d *entity.Deal) dealSchema {
	s := dealSchema{
		ID:                   d.ID,
		Title:                d.Title,
		Description:          d.Description,
		Price:                d.Price,
		MarketValue:          nullDecimal(d.MarketValue),
		MarketValueEstimated: d.MarketValueEstimated,
		Category:             d.Category.String(),
		Location:             d.Location,
		Source:               d.Source.String(),
		SourceURL:            d.SourceURL,
		ImageURL:             d.ImageURL,
		ContactInfo:          d.ContactInfo,
		AIScore:              d.AIScore,
		ScoreFactors:         stringArray(d.ScoreFactors),
		UrgencyKeywords:      stringArray(d.UrgencyKeywords),
		ProfitPotential:      nullDecimal(d.ProfitPotential),
		Status:               d.Status,
	}

	if d.DiscountPercentage != nil {
		s.DiscountPercentage = sql.NullFloat64{Float64: *d.DiscountPercentage, Valid: true}
	}

	return s
}

func (s *dealSchema) toDomain() entity.Deal {
	d := entity.Deal{
		ID:                   s.ID,
		Title:                s.Title,
		Description:          s.Description,
		Price:                s.Price,
		MarketValue:          decimalPtr(s.MarketValue),
		MarketValueEstimated: s.MarketValueEstimated,
		Category:             value.Category(s.Category),
		Location:             s.Location,
		Source:               value.Source(s.Source),
		SourceURL:            s.SourceURL,
		ImageURL:             s.ImageURL,
		ContactInfo:          s.ContactInfo,
		Status:               s.Status,
		AIScore:              s.AIScore,
		ScoreFactors:         []string(stringArray(s.ScoreFactors)),
		UrgencyKeywords:      []string(stringArray(s.UrgencyKeywords)),
		ProfitPotential:      decimalPtr(s.ProfitPotential),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if s.DiscountPercentage.Valid {
		v := s.DiscountPercentage.Float64
		d.DiscountPercentage = &v
	}

	return d
}

// buyerSchema — строка таблицы buyers.
type buyerSchema struct {
	ID               int64               `db:"id"`
	Name             string              `db:"name"`
	Email            string              `db:"email"`
	Phone            string              `db:"phone"`
	TelegramChatID   int64               `db:"telegram_chat_id"`
	Categories       pq.StringArray      `db:"categories"`
	BudgetMin        decimal.NullDecimal `db:"budget_min"`
	BudgetMax        decimal.NullDecimal `db:"budget_max"`
	Locations        pq.StringArray      `db:"locations"`
	SubscriptionTier string              `db:"subscription_tier"`
	IsActive         bool                `db:"is_active"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

func newBuyerSchema(b *entity.Buyer) buyerSchema {
	categories := make(pq.StringArray, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, c.String())
	}

	return buyerSchema{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		TelegramChatID:   b.TelegramChatID,
		Categories:       categories,
		BudgetMin:        nullDecimal(b.BudgetMin),
		BudgetMax:        nullDecimal(b.BudgetMax),
		Locations:        stringArray(b.Locations),
		SubscriptionTier: b.SubscriptionTier.String(),
		IsActive:         b.IsActive,
	}
}

func (s *buyerSchema) toDomain() entity.Buyer {
	categories := make([]value.Category, 0, len(s.Categories))
	for _, c := range s.Categories {
		categories = append(categories, value.Category(c))
	}

	return entity.Buyer{
		ID:               s.ID,
		Name:             s.Name,
		Email:            s.Email,
		Phone:            s.Phone,
		TelegramChatID:   s.TelegramChatID,
		Categories:       categories,
		BudgetMin:        decimalPtr(s.BudgetMin),
		BudgetMax:        decimalPtr(s.BudgetMax),
		Locations:        []string(stringArray(s.Locations)),
		IsActive:         s.IsActive,
		SubscriptionTier: value.SubscriptionTier(s.SubscriptionTier),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// matchSchema — строка таблицы matches.
type matchSchema struct {
	ID           int64        `db:"id"`
	DealID       int64        `db:"deal_id"`
	BuyerID      int64        `db:"buyer_id"`
	MatchScore   int          `db:"match_score"`
	Status       string       `db:"status"`
	NotifiedAt   sql.NullTime `db:"notified_at"`
	ViewedAt     sql.NullTime `db:"viewed_at"`
	InterestedAt sql.NullTime `db:"interested_at"`
	RejectedAt   sql.NullTime `db:"rejected_at"`
	Notes        string       `db:"notes"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

func (s *matchSchema) toDomain() entity.Match {
	return entity.Match{
		ID:           s.ID,
		DealID:       s.DealID,
		BuyerID:      s.BuyerID,
		MatchScore:   s.MatchScore,
		Status:       value.MatchStatus(s.Status),
		NotifiedAt:   timePtr(s.NotifiedAt),
		ViewedAt:     timePtr(s.ViewedAt),
		InterestedAt: timePtr(s.InterestedAt),
		RejectedAt:   timePtr(s.RejectedAt),
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// matchViewSchema — совпадение с полями сделки и покупателя из JOIN.
type matchViewSchema struct {
	matchSchema

	BuyerName    sql.NullString      `db:"buyer_name"`
	BuyerEmail   sql.NullString      `db:"buyer_email"`
	DealTitle    sql.NullString      `db:"title"`
	DealPrice    decimal.NullDecimal `db:"price"`
	DealAIScore  sql.NullInt64       `db:"ai_score"`
	DealCategory sql.NullString      `db:"category"`
	DealLocation sql.NullString      `db:"location"`
}

func (s *matchViewSchema) toDomain() entity.MatchView {
	return entity.MatchView{
		Match:        s.matchSchema.toDomain(),
		BuyerName:    s.BuyerName.String,
		BuyerEmail:   s.BuyerEmail.String,
		DealTitle:    s.DealTitle.String,
		DealPrice:    s.DealPrice.Decimal,
		DealAIScore:  int(s.DealAIScore.Int64),
		DealCategory: value.Category(s.DealCategory.String),
		DealLocation: s.DealLocation.String,
	}
}

// notificationSchema — строка таблицы notifications.
type notificationSchema struct {
	ID           int64     `db:"id"`
	MatchID      int64     `db:"match_id"`
	BuyerID      int64     `db:"buyer_id"`
	Type         string    `db:"type"`
	Channel      string    `db:"channel"`
	Content      string    `db:"content"`
	Status       string    `db:"status"`
	ErrorMessage string    `db:"error_message"`
	SentAt       time.Time `db:"sent_at"`
}

func newNotificationSchema(n *entity.Notification) notificationSchema {
	return notificationSchema{
		ID:           n.ID,
		MatchID:      n.MatchID,
		BuyerID:      n.BuyerID,
		Type:         n.Type,
		Channel:      n.Channel,
		Content:      n.Content,
		Status:       n.Status,
		ErrorMessage: n.ErrorMessage,
		SentAt:       n.SentAt,
	}
}

func (s notificationSchema) toDomain() entity.Notification {
	return entity.Notification{
		ID:           s.ID,
		MatchID:      s.MatchID,
		BuyerID:      s.BuyerID,
		Type:         s.Type,
		Channel:      s.Channel,
		Content:      s.Content,
		Status:       s.Status,
		ErrorMessage: s.ErrorMessage,
		SentAt:       s.SentAt,
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// stringArray никогда не возвращает nil: колонки TEXT[] объявлены NOT NULL.
func stringArray(in []string) pq.StringArray {
	if in == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(in)
}
