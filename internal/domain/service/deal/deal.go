package deal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/internal/metrics"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/logx"
)

const (
	seenTTL          = time.Hour
	seenCleanup      = 10 * time.Minute
	defaultMatchGate = 60
	defaultListLimit = 50
	maxListLimit     = 500
)

//go:generate moq -rm -out mocks.gen.go . Repository MatchDispatcher

type Repository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id int64) (*entity.Deal, error)
	Update(ctx context.Context, deal *entity.Deal) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error)
}

type Scorer interface {
	Score(ctx context.Context, deal entity.Deal) entity.ScoreResult
}

type Estimator interface {
	Estimate(category value.Category, price decimal.Decimal) decimal.Decimal
}

// MatchDispatcher запускает подбор покупателей для сделки
// (фоновой задачей или сразу).
type MatchDispatcher interface {
	DispatchMatch(ctx context.Context, dealID int64) error
}

type IngestResult struct {
	Deal       entity.Deal
	Dispatched bool
}

type Service struct {
	repo       Repository
	scorer     Scorer
	estimator  Estimator
	dispatcher MatchDispatcher
	matchGate  int
	seen       *cache.Cache
}

func NewService(repo Repository, scorer Scorer, estimator Estimator) *Service {
	return &Service{
		repo:      repo,
		scorer:    scorer,
		estimator: estimator,
		matchGate: defaultMatchGate,
		seen:      cache.New(seenTTL, seenCleanup),
	}
}

func (s *Service) WithDispatcher(d MatchDispatcher) *Service {
	s.dispatcher = d
	return s
}

// WithMatchGate задаёт минимальную оценку сделки для запуска подбора.
func (s *Service) WithMatchGate(score int) *Service {
	s.matchGate = score
	return s
}

func (s *Service) WithSeenTTL(ttl time.Duration) *Service {
	s.seen = cache.New(ttl, seenCleanup)
	return s
}

// Ingest принимает новую сделку: проверка, оценка рыночной цены, скоринг,
// сохранение и запуск подбора, если оценка проходит порог.
func (s *Service) Ingest(ctx context.Context, in entity.NewDeal) (IngestResult, error) {
	if err := validateNew(in); err != nil {
		return IngestResult{}, err
	}

	sourceURL := strings.TrimSpace(in.SourceURL)
	// Add атомарен: из параллельных приёмов одного URL проходит только первый.
	// Ключ занят до сохранения и освобождается, если сохранить не удалось.
	if sourceURL != "" {
		if err := s.seen.Add(sourceURL, int64(0), cache.DefaultExpiration); err != nil {
			return IngestResult{}, domain.NewError(errcodes.DealAlreadyIngested, "deal with this source url was ingested recently")
		}
	}

	d := entity.Deal{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		MarketValue: in.MarketValue,
		Category:    in.Category,
		Location:    strings.TrimSpace(in.Location),
		Source:      in.Source,
		SourceURL:   sourceURL,
		ImageURL:    in.ImageURL,
		ContactInfo: in.ContactInfo,
		Status:      entity.DealStatusActive,
	}

	s.estimateIfMissing(&d)
	s.score(ctx, &d)

	if err := s.repo.Create(ctx, &d); err != nil {
		if sourceURL != "" {
			s.seen.Delete(sourceURL)
		}
		return IngestResult{}, fmt.Errorf("create deal: %w", err)
	}

	if sourceURL != "" {
		s.seen.Set(sourceURL, d.ID, cache.DefaultExpiration)
	}

	metrics.DealsIngested.WithLabelValues(d.Category.String(), d.Source.String()).Inc()

	logger(ctx).Info("deal ingested",
		slog.Int64(logx.FieldDealID, d.ID),
		slog.Int(logx.FieldScore, d.AIScore),
		slog.String(logx.FieldCategory, d.Category.String()),
		slog.String(logx.FieldSource, d.Source.String()),
	)

	return IngestResult{Deal: d, Dispatched: s.dispatch(ctx, d)}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Deal, error) {
	if id <= 0 {
		return nil, domain.NewError(errcodes.InvalidDealID, "deal id must be positive")
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}

	return d, nil
}

// List возвращает сделки по фильтру, лучшие по оценке первыми.
func (s *Service) List(ctx context.Context, filter entity.DealFilter) ([]entity.Deal, error) {
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domain.NewError(errcodes.InvalidPaging, "limit and offset must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)

	deals, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	return deals, nil
}

// Update применяет изменения и пересчитывает оценку.
func (s *Service) Update(ctx context.Context, id int64, upd entity.DealUpdate) (*entity.Deal, error) {
	if upd.IsEmpty() {
		return nil, domain.NewError(errcodes.ValidationError, "no fields to update")
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	repriced := upd.Price != nil || upd.Category != nil
	upd.Apply(d)

	if err := validateDeal(*d); err != nil {
		return nil, err
	}

	if d.MarketValueEstimated && repriced {
		d.MarketValue = nil
	}
	s.estimateIfMissing(d)
	s.score(ctx, d)

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("update deal: %w", err)
	}

	return d, nil
}

// Rescore пересчитывает оценку без изменения полей и при необходимости
// заново запускает подбор. Уже созданные совпадения не дублируются.
func (s *Service) Rescore(ctx context.Context, id int64) (IngestResult, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return IngestResult{}, err
	}

	s.estimateIfMissing(d)
	s.score(ctx, d)

	if err := s.repo.Update(ctx, d); err != nil {
		return IngestResult{}, fmt.Errorf("update deal: %w", err)
	}

	return IngestResult{Deal: *d, Dispatched: s.dispatch(ctx, *d)}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewError(errcodes.InvalidDealID, "deal id must be positive")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}

	return nil
}

func (s *Service) estimateIfMissing(d *entity.Deal) {
	if d.MarketValue != nil && !d.MarketValue.IsZero() {
		return
	}

	mv := s.estimator.Estimate(d.Category, d.Price)
	d.MarketValue = &mv
	d.MarketValueEstimated = true
}

func (s *Service) score(ctx context.Context, d *entity.Deal) {
	res := s.scorer.Score(ctx, *d)
	if res.Failed() {
		metrics.ScoringFallbacks.Inc()
		logger(ctx).Warn("deal got fallback score",
			slog.Int64(logx.FieldDealID, d.ID),
			slog.String(logx.FieldError, res.Err),
		)
	}

	d.ApplyScore(res)
	metrics.DealScore.Observe(float64(res.Score))
}

// dispatch не роняет приём сделки: ошибка постановки только логируется.
func (s *Service) dispatch(ctx context.Context, d entity.Deal) bool {
	if s.dispatcher == nil || d.AIScore < s.matchGate {
		return false
	}

	if err := s.dispatcher.DispatchMatch(ctx, d.ID); err != nil {
		logger(ctx).Error("failed to dispatch matching",
			slog.Int64(logx.FieldDealID, d.ID),
			logx.Error(err),
		)
		return false
	}

	return true
}

func validateNew(in entity.NewDeal) error {
	return validateDeal(entity.Deal{
		Title:       in.Title,
		Price:       in.Price,
		MarketValue: in.MarketValue,
		Category:    in.Category,
		Source:      in.Source,
	})
}

func validateDeal(d entity.Deal) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return domain.NewError(errcodes.ValidationError, "title is required")
	case d.Price.IsNegative():
		return domain.NewError(errcodes.InvalidPrice, "price must not be negative")
	case d.MarketValue != nil && d.MarketValue.IsNegative():
		return domain.NewError(errcodes.InvalidPrice, "market value must not be negative")
	case d.Category == "":
		return domain.NewError(errcodes.InvalidCategory, "category is required")
	case d.Source == "":
		return domain.NewError(errcodes.InvalidSource, "source is required")
	}

	return nil
}
