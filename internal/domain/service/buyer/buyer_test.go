package buyer_test

import (
	"context"
	"errors"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/buyer"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newRepo() *buyer.RepositoryMock {
	stored := map[int64]entity.Buyer{}
	emails := map[string]struct{}{}
	var nextID int64

	return &buyer.RepositoryMock{
		CreateFunc: func(_ context.Context, b *entity.Buyer) error {
			if _, ok := emails[b.Email]; ok {
				return domain.NewError(errcodes.BuyerEmailTaken, "email already registered")
			}
			nextID++
			b.ID = nextID
			stored[b.ID] = *b
			emails[b.Email] = struct{}{}
			return nil
		},
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Buyer, error) {
			b, ok := stored[id]
			if !ok {
				return nil, domain.NewError(errcodes.BuyerNotFound, "buyer not found")
			}
			return &b, nil
		},
		UpdateFunc: func(_ context.Context, b *entity.Buyer) error {
			stored[b.ID] = *b
			return nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			if _, ok := stored[id]; !ok {
				return domain.NewError(errcodes.BuyerNotFound, "buyer not found")
			}
			delete(stored, id)
			return nil
		},
		ListFunc: func(_ context.Context, _ entity.BuyerFilter) ([]entity.Buyer, error) {
			out := make([]entity.Buyer, 0, len(stored))
			for _, b := range stored {
				out = append(out, b)
			}
			return out, nil
		},
	}
}

func newCache(err error) *buyer.CacheMock {
	return &buyer.CacheMock{
		InvalidateFunc: func(context.Context) error { return err },
	}
}

func investor() entity.Buyer {
	return entity.Buyer{
		Name:       " Jane Investor ",
		Email:      "Jane@Example.com ",
		Categories: []value.Category{"Real-Estate", "real-estate", " ", value.CategoryVehicles},
		BudgetMin:  dec(10000),
		BudgetMax:  dec(50000),
		Locations:  []string{"Austin", "", " Dallas "},
		IsActive:   true,
	}
}

func TestCreate(t *testing.T) {
	rq := require.New(t)
	cache := newCache(nil)
	svc := buyer.NewService(newRepo()).WithCache(cache)

	b, err := svc.Create(context.Background(), investor())
	rq.NoError(err)
	rq.Equal(int64(1), b.ID)
	rq.Equal("Jane Investor", b.Name)
	rq.Equal("jane@example.com", b.Email)
	rq.Equal(value.SubscriptionFree, b.SubscriptionTier)
	rq.Equal([]value.Category{value.CategoryRealEstate, value.CategoryVehicles}, b.Categories)
	rq.Equal([]string{"Austin", "Dallas"}, b.Locations)
	rq.Len(cache.InvalidateCalls(), 1)

	_, err = svc.Create(context.Background(), investor())
	rq.True(domain.IsConflict(err))
	rq.Len(cache.InvalidateCalls(), 1)
}

func TestCreate_Validation(t *testing.T) {
	rq := require.New(t)
	svc := buyer.NewService(newRepo())

	testCases := []struct {
		name   string
		modify func(b *entity.Buyer)
		code   failure.ErrorCode
	}{
		{name: "Missing name", modify: func(b *entity.Buyer) { b.Name = "" }, code: errcodes.ValidationError},
		{name: "Bad email", modify: func(b *entity.Buyer) { b.Email = "not-an-email" }, code: errcodes.ValidationError},
		{name: "Unknown tier", modify: func(b *entity.Buyer) { b.SubscriptionTier = "gold" }, code: errcodes.ValidationError},
		{name: "Negative budget", modify: func(b *entity.Buyer) { b.BudgetMin = dec(-5) }, code: errcodes.InvalidBudget},
		{name: "Inverted budget", modify: func(b *entity.Buyer) { b.BudgetMin = dec(60000) }, code: errcodes.InvalidBudget},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			in := investor()
			tc.modify(&in)

			_, err := svc.Create(context.Background(), in)
			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code)
		})
	}
}

func TestUpdateAndUnsubscribe(t *testing.T) {
	rq := require.New(t)
	cache := newCache(errors.New("redis unavailable"))
	svc := buyer.NewService(newRepo()).WithCache(cache)

	created, err := svc.Create(context.Background(), investor())
	rq.NoError(err)

	_, err = svc.Update(context.Background(), created.ID, entity.BuyerUpdate{})
	rq.True(domain.HasCode(err, errcodes.ValidationError))

	tier := value.SubscriptionPremium
	locations := []string{"Houston"}
	updated, err := svc.Update(context.Background(), created.ID, entity.BuyerUpdate{
		SubscriptionTier: &tier,
		Locations:        &locations,
	})
	rq.NoError(err)
	rq.Equal(value.SubscriptionPremium, updated.SubscriptionTier)
	rq.Equal([]string{"Houston"}, updated.Locations)

	unsubscribed, err := svc.Unsubscribe(context.Background(), created.ID)
	rq.NoError(err)
	rq.False(unsubscribed.IsActive)
	rq.Len(cache.InvalidateCalls(), 3)

	_, err = svc.Unsubscribe(context.Background(), 42)
	rq.True(domain.IsNotFound(err))
}

func TestPreferences(t *testing.T) {
	rq := require.New(t)
	svc := buyer.NewService(newRepo())

	created, err := svc.Create(context.Background(), entity.Buyer{Name: "Any", Email: "any@example.com", IsActive: true})
	rq.NoError(err)

	prefs, err := svc.Preferences(context.Background(), created.ID)
	rq.NoError(err)
	rq.Equal("Any", prefs.Name)
	rq.Empty(prefs.Categories)
	rq.NotNil(prefs.Categories)
	rq.NotNil(prefs.Locations)
	rq.Nil(prefs.BudgetMin)
}

func TestGetAndDelete(t *testing.T) {
	rq := require.New(t)
	svc := buyer.NewService(newRepo())

	_, err := svc.Get(context.Background(), -1)
	rq.True(domain.HasCode(err, errcodes.InvalidBuyerID))

	created, err := svc.Create(context.Background(), investor())
	rq.NoError(err)

	rq.NoError(svc.Delete(context.Background(), created.ID))
	rq.True(domain.IsNotFound(svc.Delete(context.Background(), created.ID)))

	buyers, err := svc.List(context.Background(), entity.BuyerFilter{})
	rq.NoError(err)
	rq.Empty(buyers)
}
