package server

import (
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/stats"
	"dealflow/internal/domain/value"
	"dealflow/pkg/lox"
	"dealflow/pkg/rest"
)

func newRESTDeal(d entity.Deal) rest.Deal {
	factors := d.ScoreFactors
	if factors == nil {
		factors = []string{}
	}

	keywords := d.UrgencyKeywords
	if keywords == nil {
		keywords = []string{}
	}

	return rest.Deal{
		ID:                   d.ID,
		Title:                d.Title,
		Description:          d.Description,
		Price:                d.Price,
		MarketValue:          d.MarketValue,
		MarketValueEstimated: d.MarketValueEstimated,
		Category:             d.Category.String(),
		Location:             d.Location,
		Source:               d.Source.String(),
		SourceURL:            d.SourceURL,
		ImageURL:             d.ImageURL,
		ContactInfo:          d.ContactInfo,
		Status:               d.Status,
		AIScore:              d.AIScore,
		ScoreFactors:         factors,
		UrgencyKeywords:      keywords,
		DiscountPercentage:   d.DiscountPercentage,
		ProfitPotential:      d.ProfitPotential,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func newDomainNewDeal(r rest.CreateDealRequest) entity.NewDeal {
	return entity.NewDeal{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		MarketValue: r.MarketValue,
		Category:    value.ParseCategory(r.Category),
		Location:    r.Location,
		Source:      value.ParseSource(r.Source),
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		ContactInfo: r.ContactInfo,
	}
}

func newDomainDealUpdate(r rest.UpdateDealRequest) entity.DealUpdate {
	upd := entity.DealUpdate{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		MarketValue: r.MarketValue,
		Location:    r.Location,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		ContactInfo: r.ContactInfo,
		Status:      r.Status,
	}

	if r.Category != nil {
		c := value.ParseCategory(*r.Category)
		upd.Category = &c
	}
	if r.Source != nil {
		s := value.ParseSource(*r.Source)
		upd.Source = &s
	}

	return upd
}

func newRESTBuyer(b entity.Buyer) rest.Buyer {
	return rest.Buyer{
		ID:               b.ID,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		TelegramChatID:   b.TelegramChatID,
		Categories:       categoriesToStrings(b.Categories),
		BudgetMin:        b.BudgetMin,
		BudgetMax:        b.BudgetMax,
		Locations:        nonNil(b.Locations),
		IsActive:         b.IsActive,
		SubscriptionTier: b.SubscriptionTier.String(),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func newDomainBuyer(r rest.CreateBuyerRequest) entity.Buyer {
	return entity.Buyer{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		TelegramChatID:   r.TelegramChatID,
		Categories:       stringsToCategories(r.Categories),
		BudgetMin:        r.BudgetMin,
		BudgetMax:        r.BudgetMax,
		Locations:        r.Locations,
		IsActive:         true,
		SubscriptionTier: value.SubscriptionTier(r.SubscriptionTier),
	}
}

func newDomainBuyerUpdate(r rest.UpdateBuyerRequest) entity.BuyerUpdate {
	upd := entity.BuyerUpdate{
		Name:           r.Name,
		Phone:          r.Phone,
		TelegramChatID: r.TelegramChatID,
		BudgetMin:      r.BudgetMin,
		BudgetMax:      r.BudgetMax,
		Locations:      r.Locations,
		IsActive:       r.IsActive,
	}

	if r.Categories != nil {
		c := stringsToCategories(*r.Categories)
		upd.Categories = &c
	}
	if r.SubscriptionTier != nil {
		t := value.SubscriptionTier(*r.SubscriptionTier)
		upd.SubscriptionTier = &t
	}

	return upd
}

func newRESTPreferences(p entity.BuyerPreferences) rest.BuyerPreferences {
	return rest.BuyerPreferences{
		ID:               p.ID,
		Name:             p.Name,
		Categories:       categoriesToStrings(p.Categories),
		BudgetMin:        p.BudgetMin,
		BudgetMax:        p.BudgetMax,
		Locations:        nonNil(p.Locations),
		SubscriptionTier: p.SubscriptionTier.String(),
	}
}

func newRESTMatch(m entity.Match) rest.Match {
	return rest.Match{
		ID:           m.ID,
		DealID:       m.DealID,
		BuyerID:      m.BuyerID,
		MatchScore:   m.MatchScore,
		Status:       m.Status.String(),
		NotifiedAt:   m.NotifiedAt,
		ViewedAt:     m.ViewedAt,
		InterestedAt: m.InterestedAt,
		RejectedAt:   m.RejectedAt,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func newRESTMatchView(v entity.MatchView) rest.Match {
	m := newRESTMatch(v.Match)

	price := v.DealPrice
	score := v.DealAIScore

	m.BuyerName = v.BuyerName
	m.BuyerEmail = v.BuyerEmail
	m.Title = v.DealTitle
	m.Price = &price
	m.AIScore = &score
	m.Category = v.DealCategory.String()
	m.DealLocation = v.DealLocation

	return m
}

func newRESTMatchList(views []entity.MatchView) rest.MatchList {
	return rest.MatchList{
		Matches: lox.Map(views, newRESTMatchView),
		Count:   len(views),
	}
}

func newRESTNotification(n entity.Notification) rest.Notification {
	return rest.Notification{
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

func newRESTMatchReport(r entity.MatchReport) rest.MatchReport {
	return rest.MatchReport{
		DealID:   r.DealID,
		Matches:  lox.Map(r.Created, newRESTMatch),
		Count:    len(r.Created),
		Notified: r.Notified,
		Failed:   r.Failed,
	}
}

func newRESTStats(s stats.Snapshot) rest.Stats {
	byStatus := s.MatchesByStatus
	if byStatus == nil {
		byStatus = map[string]int{}
	}

	return rest.Stats{
		TotalDeals:        s.TotalDeals,
		HotDeals:          s.HotDeals,
		TotalBuyers:       s.TotalBuyers,
		ActiveBuyers:      s.ActiveBuyers,
		TotalMatches:      s.TotalMatches,
		InterestedMatches: s.InterestedMatches,
		MatchesByStatus:   byStatus,
		TopDeals:          lox.Map(s.TopDeals, newRESTDeal),
	}
}

func categoriesToStrings(in []value.Category) []string {
	return lox.Map(in, value.Category.String)
}

func stringsToCategories(in []string) []value.Category {
	if in == nil {
		return nil
	}

	return lox.Map(in, value.ParseCategory)
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}
