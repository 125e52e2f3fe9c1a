package match_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"dealflow/internal/domain"
	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/match"
	"dealflow/internal/domain/service/matching"
	"dealflow/internal/domain/value"
	"dealflow/pkg/errcodes"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

type memoryMatches struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]entity.Match
	pairs   map[[2]int64]struct{}
	updates int
	inserts int
	failAt  int // номер вставки, на которой хранилище падает; 0 не падает
}

func newMemoryMatches() *memoryMatches {
	return &memoryMatches{byID: map[int64]entity.Match{}, pairs: map[[2]int64]struct{}{}}
}

func (s *memoryMatches) CreateIfAbsent(_ context.Context, m *entity.Match) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inserts++
	if s.inserts == s.failAt {
		return false, errors.New("connection reset")
	}

	key := [2]int64{m.DealID, m.BuyerID}
	if _, ok := s.pairs[key]; ok {
		return false, nil
	}
	s.nextID++
	m.ID = s.nextID
	s.pairs[key] = struct{}{}
	s.byID[m.ID] = *m
	return true, nil
}

func (s *memoryMatches) repository() *match.RepositoryMock {
	return &match.RepositoryMock{
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Match, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			m, ok := s.byID[id]
			if !ok {
				return nil, domain.NewError(errcodes.MatchNotFound, "match not found")
			}
			return &m, nil
		},
		UpdateFunc: func(_ context.Context, m *entity.Match) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.byID[m.ID] = *m
			s.updates++
			return nil
		},
		ListFunc: func(context.Context, entity.MatchFilter) ([]entity.MatchView, error) {
			return []entity.MatchView{}, nil
		},
		ListByBuyerFunc: func(context.Context, int64, entity.MatchFilter) ([]entity.MatchView, error) {
			return []entity.MatchView{}, nil
		},
		ListByDealFunc: func(context.Context, int64) ([]entity.MatchView, error) {
			return []entity.MatchView{}, nil
		},
	}
}

type fixture struct {
	store         *memoryMatches
	repo          *match.RepositoryMock
	buyers        *match.BuyerSourceMock
	notifications *match.NotificationRepositoryMock
	svc           *match.Service
}

func newFixture(deal entity.Deal, buyers []entity.Buyer) *fixture {
	store := newMemoryMatches()
	f := &fixture{
		store: store,
		repo:  store.repository(),
		buyers: &match.BuyerSourceMock{
			ListActiveFunc: func(context.Context) ([]entity.Buyer, error) { return buyers, nil },
		},
		notifications: &match.NotificationRepositoryMock{
			CreateFunc: func(context.Context, *entity.Notification) error { return nil },
		},
	}

	deals := &match.DealReaderMock{
		GetByIDFunc: func(_ context.Context, id int64) (*entity.Deal, error) {
			if id != deal.ID {
				return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
			}
			d := deal
			return &d, nil
		},
	}

	builder := matching.NewBuilder(matching.NewMatcher(matching.DefaultConfig()), store)
	f.svc = match.NewService(deals, f.buyers, builder, f.repo, f.notifications).
		WithClock(func() time.Time { return fixedNow })

	return f
}

func notifier(channel string, err error) *match.NotifierMock {
	return &match.NotifierMock{
		ChannelFunc: func() string { return channel },
		NotifyMatchFunc: func(_ context.Context, n entity.MatchNotice) (string, error) {
			if err != nil {
				return "", err
			}
			return "deal " + n.Deal.Title + " for " + n.Buyer.Name, nil
		},
	}
}

func hotDeal() entity.Deal {
	return entity.Deal{
		ID:       1,
		Title:    "Duplex",
		Price:    decimal.NewFromInt(30000),
		Category: value.CategoryRealEstate,
		Location: "Austin, TX",
		AIScore:  85,
	}
}

func anyBuyers(n int) []entity.Buyer {
	buyers := make([]entity.Buyer, 0, n)
	for i := range n {
		buyers = append(buyers, entity.Buyer{ID: int64(i + 1), Name: "buyer", IsActive: true})
	}
	return buyers
}

func TestMatchDeal_NotifiesTopMatches(t *testing.T) {
	rq := require.New(t)

	buyers := anyBuyers(12)
	// 30 + 30 + 20 + 20 = 100
	lo, hi := decimal.NewFromInt(20000), decimal.NewFromInt(40000)
	buyers[11].Categories = []value.Category{value.CategoryRealEstate}
	buyers[11].BudgetMin, buyers[11].BudgetMax = &lo, &hi
	buyers[11].Locations = []string{"austin"}

	f := newFixture(hotDeal(), buyers)
	direct := notifier("telegram", nil)
	hot := notifier("telegram_admin", nil)
	f.svc.WithRoutes(
		match.Route{Notifier: direct},
		match.Route{Notifier: hot, MinScore: 80},
	)

	report, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	rq.Len(report.Created, 12)
	rq.Equal(10, report.Notified)
	rq.Zero(report.Failed)

	rq.Equal(int64(12), report.Created[0].BuyerID)
	rq.Equal(100, report.Created[0].MatchScore)
	rq.Equal(value.MatchStatusNotified, report.Created[0].Status)
	rq.Equal(fixedNow, *report.Created[0].NotifiedAt)
	rq.Equal(value.MatchStatusPending, report.Created[11].Status)

	rq.Len(direct.NotifyMatchCalls(), 10)
	rq.Len(hot.NotifyMatchCalls(), 1)
	rq.Len(f.notifications.CreateCalls(), 11)
	rq.Equal(10, f.store.updates)

	n := f.notifications.CreateCalls()[0].N
	rq.Equal(entity.NotificationTypeDealMatch, n.Type)
	rq.Equal(entity.NotificationStatusSent, n.Status)
	rq.Equal("deal Duplex for buyer", n.Content)

	again, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	rq.Empty(again.Created)
	rq.Len(direct.NotifyMatchCalls(), 10)
}

func TestMatchDeal_DeliveryFailure(t *testing.T) {
	rq := require.New(t)

	f := newFixture(hotDeal(), anyBuyers(2))
	f.svc.WithRoutes(match.Route{Notifier: notifier("telegram", errors.New("chat not found"))})

	report, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	rq.Len(report.Created, 2)
	rq.Zero(report.Notified)
	rq.Equal(2, report.Failed)
	rq.Zero(f.store.updates)

	for _, call := range f.notifications.CreateCalls() {
		rq.Equal(entity.NotificationStatusFailed, call.N.Status)
		rq.Equal("chat not found", call.N.ErrorMessage)
	}
}

func TestMatchDeal_NotifyLimit(t *testing.T) {
	rq := require.New(t)

	f := newFixture(hotDeal(), anyBuyers(5))
	direct := notifier("telegram", nil)
	f.svc.WithRoutes(match.Route{Notifier: direct}).WithNotifyLimit(2)

	report, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	rq.Len(report.Created, 5)
	rq.Equal(2, report.Notified)
	rq.Len(direct.NotifyMatchCalls(), 2)
}

func TestMatchDeal_NonPositiveNotifyLimit(t *testing.T) {
	rq := require.New(t)

	for _, limit := range []int{0, -1} {
		f := newFixture(hotDeal(), anyBuyers(3))
		direct := notifier("telegram", nil)
		f.svc.WithRoutes(match.Route{Notifier: direct}).WithNotifyLimit(limit)

		report, err := f.svc.MatchDeal(context.Background(), 1)
		rq.NoError(err)
		rq.Equal(3, report.Notified)
		rq.Len(direct.NotifyMatchCalls(), 3)
	}
}

func TestMatchDeal_StoreFailureNotifiesInserted(t *testing.T) {
	rq := require.New(t)

	f := newFixture(hotDeal(), anyBuyers(3))
	f.store.failAt = 2
	direct := notifier("telegram", nil)
	f.svc.WithRoutes(match.Route{Notifier: direct})

	report, err := f.svc.MatchDeal(context.Background(), 1)
	rq.Error(err)
	rq.Len(report.Created, 1)
	rq.Equal(1, report.Notified)
	rq.Equal(int64(1), direct.NotifyMatchCalls()[0].Notice.Buyer.ID)

	stored, err := f.repo.GetByID(context.Background(), report.Created[0].ID)
	rq.NoError(err)
	rq.Equal(value.MatchStatusNotified, stored.Status)

	// повтор досоздаёт оставшиеся совпадения, первое не дублируется
	again, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	rq.Len(again.Created, 2)
	rq.Len(direct.NotifyMatchCalls(), 3)
}

func TestMatchDeal_BuyerCache(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		cache      *match.BuyerCacheMock
		storeCalls int
		setCalls   int
	}{
		{
			name: "Hit",
			cache: &match.BuyerCacheMock{
				GetFunc: func(context.Context) ([]entity.Buyer, bool, error) { return anyBuyers(3), true, nil },
				SetFunc: func(context.Context, []entity.Buyer) error { return nil },
			},
			storeCalls: 0,
			setCalls:   0,
		},
		{
			name: "Miss",
			cache: &match.BuyerCacheMock{
				GetFunc: func(context.Context) ([]entity.Buyer, bool, error) { return nil, false, nil },
				SetFunc: func(context.Context, []entity.Buyer) error { return nil },
			},
			storeCalls: 1,
			setCalls:   1,
		},
		{
			name: "Broken cache falls back to store",
			cache: &match.BuyerCacheMock{
				GetFunc: func(context.Context) ([]entity.Buyer, bool, error) { return nil, false, errors.New("timeout") },
				SetFunc: func(context.Context, []entity.Buyer) error { return errors.New("timeout") },
			},
			storeCalls: 1,
			setCalls:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(_ *testing.T) {
			f := newFixture(hotDeal(), anyBuyers(3))
			f.svc.WithCache(tc.cache)

			report, err := f.svc.MatchDeal(context.Background(), 1)
			rq.NoError(err)
			rq.Len(report.Created, 3)
			rq.Len(f.buyers.ListActiveCalls(), tc.storeCalls)
			rq.Len(tc.cache.SetCalls(), tc.setCalls)
		})
	}
}

func TestMatchDeal_UnknownDeal(t *testing.T) {
	rq := require.New(t)
	f := newFixture(hotDeal(), anyBuyers(1))

	_, err := f.svc.MatchDeal(context.Background(), 2)
	rq.True(domain.IsNotFound(err))
}

func TestUpdateStatusAndTrack(t *testing.T) {
	rq := require.New(t)

	f := newFixture(hotDeal(), anyBuyers(1))
	report, err := f.svc.MatchDeal(context.Background(), 1)
	rq.NoError(err)
	id := report.Created[0].ID

	_, err = f.svc.UpdateStatus(context.Background(), id, "", nil)
	rq.True(domain.HasCode(err, errcodes.ValidationError))

	_, err = f.svc.UpdateStatus(context.Background(), id, "archived", nil)
	rq.True(domain.HasCode(err, errcodes.InvalidMatchStatus))

	notes := " call back on monday "
	m, err := f.svc.UpdateStatus(context.Background(), id, value.MatchStatusInterested, &notes)
	rq.NoError(err)
	rq.Equal(value.MatchStatusInterested, m.Status)
	rq.Equal("call back on monday", m.Notes)
	rq.Equal(fixedNow, *m.InterestedAt)

	m, err = f.svc.Track(context.Background(), id, value.TrackActionView)
	rq.NoError(err)
	rq.Equal(value.MatchStatusViewed, m.Status)
	rq.NotNil(m.ViewedAt)
	rq.NotNil(m.InterestedAt)
	rq.Equal("call back on monday", m.Notes)

	_, err = f.svc.Track(context.Background(), id, "click")
	rq.True(domain.HasCode(err, errcodes.InvalidTrackAction))

	_, err = f.svc.Track(context.Background(), 999, value.TrackActionReject)
	rq.True(domain.IsNotFound(err))
}

func TestList(t *testing.T) {
	rq := require.New(t)
	f := newFixture(hotDeal(), nil)

	_, err := f.svc.List(context.Background(), entity.MatchFilter{Status: "unknown"})
	rq.True(domain.HasCode(err, errcodes.InvalidMatchStatus))

	_, err = f.svc.List(context.Background(), entity.MatchFilter{})
	rq.NoError(err)
	rq.Equal(100, f.repo.ListCalls()[0].Filter.Limit)

	_, err = f.svc.ListByBuyer(context.Background(), 3, entity.MatchFilter{Status: value.MatchStatusViewed, Limit: 5})
	rq.NoError(err)
	call := f.repo.ListByBuyerCalls()[0]
	rq.Equal(int64(3), call.BuyerID)
	rq.Equal(5, call.Filter.Limit)

	_, err = f.svc.ListByDeal(context.Background(), 0)
	rq.True(domain.HasCode(err, errcodes.InvalidDealID))
}
