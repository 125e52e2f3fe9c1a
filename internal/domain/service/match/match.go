package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/internal/metrics"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/logx"
	"dealflow/pkg/lox"
)

const (
	defaultNotifyLimit = 10
	defaultListLimit   = 100
	maxListLimit       = 500
)

//go:generate moq -rm -out mocks.gen.go . DealReader BuyerSource BuyerCache Builder Repository NotificationRepository Notifier

type DealReader interface {
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
}

type BuyerSource interface {
	ListActive(ctx context.Context) ([]entity.Buyer, error)
}

// BuyerCache хранит снимок активных покупателей. found=false означает промах.
type BuyerCache interface {
	Get(ctx context.Context) (buyers []entity.Buyer, found bool, err error)
	Set(ctx context.Context, buyers []entity.Buyer) error
}

type Builder interface {
	Build(ctx context.Context, deal entity.Deal, buyers []entity.Buyer) ([]entity.Match, error)
}

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entity.Match, error)
	Update(ctx context.Context, m *entity.Match) error
	ListByDeal(ctx context.Context, dealID int64) ([]entity.MatchView, error)
	ListByBuyer(ctx context.Context, buyerID int64, filter entity.MatchFilter) ([]entity.MatchView, error)
	List(ctx context.Context, filter entity.MatchFilter) ([]entity.MatchView, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
}

// Notifier доставляет уведомление о совпадении и возвращает отправленный текст.
type Notifier interface {
	Channel() string
	NotifyMatch(ctx context.Context, notice entity.MatchNotice) (content string, err error)
}

// Route — канал уведомлений и минимальная оценка совпадения для него.
type Route struct {
	Notifier Notifier
	MinScore int
}

type Service struct {
	deals         DealReader
	buyers        BuyerSource
	cache         BuyerCache
	builder       Builder
	matches       Repository
	notifications NotificationRepository
	routes        []Route
	notifyLimit   int
	now           func() time.Time
}

func NewService(
	deals DealReader,
	buyers BuyerSource,
	builder Builder,
	matches Repository,
	notifications NotificationRepository,
) *Service {
	return &Service{
		deals:         deals,
		buyers:        buyers,
		builder:       builder,
		matches:       matches,
		notifications: notifications,
		notifyLimit:   defaultNotifyLimit,
		now:           time.Now,
	}
}

func (s *Service) WithCache(c BuyerCache) *Service {
	s.cache = c
	return s
}

func (s *Service) WithRoutes(routes ...Route) *Service {
	s.routes = routes
	return s
}

// WithNotifyLimit — сколько новых совпадений уведомлять за один подбор.
// Значения <= 0 игнорируются.
func (s *Service) WithNotifyLimit(n int) *Service {
	if n > 0 {
		s.notifyLimit = n
	}
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// MatchDeal подбирает покупателей для сделки, сохраняет новые совпадения и
// уведомляет лучших из них. Ошибки доставки не прерывают подбор.
func (s *Service) MatchDeal(ctx context.Context, dealID int64) (entity.MatchReport, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return entity.MatchReport{}, fmt.Errorf("get deal: %w", err)
	}

	buyers, err := s.activeBuyers(ctx)
	if err != nil {
		return entity.MatchReport{}, err
	}

	created, buildErr := s.builder.Build(ctx, *deal, buyers)

	metrics.MatchesCreated.Add(float64(len(created)))

	// Уже вставленные совпадения повторный подбор не вернёт, поэтому
	// уведомляем их даже при ошибке построения.
	report := entity.MatchReport{DealID: deal.ID, Created: created}
	s.notifyCreated(ctx, &report, *deal, buyers)

	if buildErr != nil {
		return report, fmt.Errorf("build matches: %w", buildErr)
	}

	logger(ctx).Info("deal matched",
		slog.Int64(logx.FieldDealID, deal.ID),
		slog.Int("buyers", len(buyers)),
		slog.Int("created", len(created)),
		slog.Int("notified", report.Notified),
	)

	return report, nil
}

func (s *Service) notifyCreated(ctx context.Context, report *entity.MatchReport, deal entity.Deal, buyers []entity.Buyer) {
	byID := lox.FilterAssociate(buyers, func(b entity.Buyer) (int64, bool) {
		return b.ID, b.IsActive
	})

	limit := min(len(report.Created), s.notifyLimit)
	for i := range report.Created[:limit] {
		m := &report.Created[i]

		buyer, ok := byID[m.BuyerID]
		if !ok {
			continue
		}

		if s.notify(ctx, m, deal, buyer) {
			report.Notified++
		} else {
			report.Failed++
		}
	}
}

func (s *Service) activeBuyers(ctx context.Context) ([]entity.Buyer, error) {
	if s.cache != nil {
		buyers, found, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			logger(ctx).Warn("buyer cache read failed", logx.Error(err))
		case found:
			metrics.BuyerCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return buyers, nil
		}
		metrics.BuyerCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}

	buyers, err := s.buyers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active buyers: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, buyers); err != nil {
			logger(ctx).Warn("buyer cache write failed", logx.Error(err))
		}
	}

	return buyers, nil
}

// notify рассылает совпадение по всем подходящим каналам и пишет журнал.
// Совпадение считается уведомлённым, если сработал хотя бы один канал.
func (s *Service) notify(ctx context.Context, m *entity.Match, deal entity.Deal, buyer entity.Buyer) bool {
	notice := entity.MatchNotice{Match: *m, Deal: deal, Buyer: buyer}
	delivered := false

	for _, route := range s.routes {
		if m.MatchScore < route.MinScore {
			continue
		}

		channel := route.Notifier.Channel()
		n := entity.Notification{
			MatchID: m.ID,
			BuyerID: buyer.ID,
			Type:    entity.NotificationTypeDealMatch,
			Channel: channel,
			Status:  entity.NotificationStatusSent,
			SentAt:  s.now(),
		}

		content, err := route.Notifier.NotifyMatch(ctx, notice)
		n.Content = content
		if err != nil {
			n.Status = entity.NotificationStatusFailed
			n.ErrorMessage = err.Error()
			logger(ctx).Warn("match notification failed",
				slog.Int64(logx.FieldMatchID, m.ID),
				slog.Int64(logx.FieldBuyerID, buyer.ID),
				slog.String("channel", channel),
				logx.Error(err),
			)
		} else {
			delivered = true
		}

		metrics.Notifications.WithLabelValues(channel, n.Status).Inc()

		if err := s.notifications.Create(ctx, &n); err != nil {
			logger(ctx).Error("failed to log notification",
				slog.Int64(logx.FieldMatchID, m.ID),
				logx.Error(err),
			)
		}
	}

	if !delivered {
		return false
	}

	now := s.now()
	m.Status = value.MatchStatusNotified
	m.NotifiedAt = &now

	if err := s.matches.Update(ctx, m); err != nil {
		logger(ctx).Error("failed to mark match notified",
			slog.Int64(logx.FieldMatchID, m.ID),
			logx.Error(err),
		)
	}

	return true
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Match, error) {
	if id <= 0 {
		return nil, domain.NewError(errcodes.InvalidMatchID, "match id must be positive")
	}

	m, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}

	return m, nil
}

// UpdateStatus выставляет статус и/или заметки. Переходы не ограничены,
// соответствующая статусу метка времени обновляется.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status value.MatchStatus, notes *string) (*entity.Match, error) {
	if status == "" && notes == nil {
		return nil, domain.NewError(errcodes.ValidationError, "no fields to update")
	}

	if status != "" {
		if _, err := value.ParseMatchStatus(status.String()); err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidMatchStatus, "invalid match status")
		}
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != "" {
		s.stamp(m, status)
	}
	if notes != nil {
		m.Notes = strings.TrimSpace(*notes)
	}

	if err := s.matches.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("update match: %w", err)
	}

	return m, nil
}

// Track фиксирует действие покупателя по ссылке из уведомления.
func (s *Service) Track(ctx context.Context, id int64, action value.TrackAction) (*entity.Match, error) {
	status, err := action.Status()
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidTrackAction, "invalid action")
	}

	return s.UpdateStatus(ctx, id, status, nil)
}

func (s *Service) ListByDeal(ctx context.Context, dealID int64) ([]entity.MatchView, error) {
	if dealID <= 0 {
		return nil, domain.NewError(errcodes.InvalidDealID, "deal id must be positive")
	}

	views, err := s.matches.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("list deal matches: %w", err)
	}

	return views, nil
}

func (s *Service) ListByBuyer(ctx context.Context, buyerID int64, filter entity.MatchFilter) ([]entity.MatchView, error) {
	if buyerID <= 0 {
		return nil, domain.NewError(errcodes.InvalidBuyerID, "buyer id must be positive")
	}

	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	views, err := s.matches.ListByBuyer(ctx, buyerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list buyer matches: %w", err)
	}

	return views, nil
}

func (s *Service) List(ctx context.Context, filter entity.MatchFilter) ([]entity.MatchView, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	views, err := s.matches.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return views, nil
}

func (s *Service) stamp(m *entity.Match, status value.MatchStatus) {
	now := s.now()
	m.Status = status

	switch status {
	case value.MatchStatusNotified:
		m.NotifiedAt = &now
	case value.MatchStatusViewed:
		m.ViewedAt = &now
	case value.MatchStatusInterested:
		m.InterestedAt = &now
	case value.MatchStatusRejected:
		m.RejectedAt = &now
	case value.MatchStatusPending:
	}
}

func normalizeFilter(filter entity.MatchFilter) (entity.MatchFilter, error) {
	if filter.Status != "" {
		if _, err := value.ParseMatchStatus(filter.Status.String()); err != nil {
			return filter, domain.WrapError(err, errcodes.InvalidMatchStatus, "invalid match status")
		}
	}

	if filter.Limit < 0 {
		return filter, domain.NewError(errcodes.InvalidPaging, "limit must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)

	return filter, nil
}
