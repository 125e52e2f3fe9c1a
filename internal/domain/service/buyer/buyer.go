package buyer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
	"dealflow/pkg/logx"
)

var validate = validator.New() //nolint:gochecknoglobals

//go:generate moq -rm -out mocks.gen.go . Repository Cache

// Repository — хранилище покупателей. Create возвращает
// errcodes.BuyerEmailTaken, если email уже занят.
type Repository interface {
	Create(ctx context.Context, buyer *entity.Buyer) error
	GetByID(ctx context.Context, id int64) (*entity.Buyer, error)
	Update(ctx context.Context, buyer *entity.Buyer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter entity.BuyerFilter) ([]entity.Buyer, error)
}

// Cache — кэш активных покупателей, сбрасывается при любом изменении.
type Cache interface {
	Invalidate(ctx context.Context) error
}

type Service struct {
	repo  Repository
	cache Cache
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) WithCache(c Cache) *Service {
	s.cache = c
	return s
}

func (s *Service) Create(ctx context.Context, b entity.Buyer) (*entity.Buyer, error) {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.ToLower(strings.TrimSpace(b.Email))
	if b.SubscriptionTier == "" {
		b.SubscriptionTier = value.SubscriptionFree
	}
	b.Categories = normalizeCategories(b.Categories)
	b.Locations = normalizeLocations(b.Locations)

	if err := validateBuyer(b); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		return nil, fmt.Errorf("create buyer: %w", err)
	}

	s.invalidate(ctx)

	logger(ctx).Info("buyer registered",
		slog.Int64(logx.FieldBuyerID, b.ID),
		slog.String("subscription-tier", b.SubscriptionTier.String()),
	)

	return &b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Buyer, error) {
	if id <= 0 {
		return nil, domain.NewError(errcodes.InvalidBuyerID, "buyer id must be positive")
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get buyer: %w", err)
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, filter entity.BuyerFilter) ([]entity.Buyer, error) {
	buyers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}

	return buyers, nil
}

func (s *Service) Update(ctx context.Context, id int64, upd entity.BuyerUpdate) (*entity.Buyer, error) {
	if upd.IsEmpty() {
		return nil, domain.NewError(errcodes.ValidationError, "no fields to update")
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(b)
	b.Name = strings.TrimSpace(b.Name)
	b.Categories = normalizeCategories(b.Categories)
	b.Locations = normalizeLocations(b.Locations)

	if err := validateBuyer(*b); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update buyer: %w", err)
	}

	s.invalidate(ctx)

	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewError(errcodes.InvalidBuyerID, "buyer id must be positive")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete buyer: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Unsubscribe выключает покупателя: он перестаёт участвовать в подборе.
func (s *Service) Unsubscribe(ctx context.Context, id int64) (*entity.Buyer, error) {
	inactive := false
	return s.Update(ctx, id, entity.BuyerUpdate{IsActive: &inactive})
}

func (s *Service) Preferences(ctx context.Context, id int64) (entity.BuyerPreferences, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return entity.BuyerPreferences{}, err
	}

	return b.Preferences(), nil
}

// invalidate: недоступный кэш не должен ломать запись, максимум отдаст
// устаревший список до истечения TTL.
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger(ctx).Warn("failed to invalidate buyer cache", logx.Error(err))
	}
}

func validateBuyer(b entity.Buyer) error {
	if b.Name == "" {
		return domain.NewError(errcodes.ValidationError, "name is required")
	}

	if err := validate.Var(b.Email, "required,email"); err != nil {
		return domain.WrapError(err, errcodes.ValidationError, "valid email is required")
	}

	if _, err := value.ParseSubscriptionTier(b.SubscriptionTier.String()); err != nil {
		return domain.WrapError(err, errcodes.ValidationError, "invalid subscription tier")
	}

	if (b.BudgetMin != nil && b.BudgetMin.IsNegative()) || (b.BudgetMax != nil && b.BudgetMax.IsNegative()) {
		return domain.NewError(errcodes.InvalidBudget, "budget must not be negative")
	}

	if b.HasBudget() && b.BudgetMin.GreaterThan(*b.BudgetMax) {
		return domain.NewError(errcodes.InvalidBudget, "budget_min is greater than budget_max")
	}

	return nil
}

func normalizeCategories(in []value.Category) []value.Category {
	out := make([]value.Category, 0, len(in))
	seen := make(map[value.Category]struct{}, len(in))

	for _, c := range in {
		c = value.ParseCategory(c.String())
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

func normalizeLocations(in []string) []string {
	out := make([]string, 0, len(in))
	for _, loc := range in {
		if loc = strings.TrimSpace(loc); loc != "" {
			out = append(out, loc)
		}
	}
	return out
}
