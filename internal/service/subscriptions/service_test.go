package subscriptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	subscriptionRepo "github.com/petfit/booking-service/internal/infra/storage/subscription"
	"github.com/petfit/booking-service/internal/service/subscriptions/models"
	"github.com/petfit/booking-service/pkg/ptr"
)

type fakeRepo struct {
	subscriptions map[int64]*domain.Subscription
	nextID        int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{subscriptions: map[int64]*domain.Subscription{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, s *domain.Subscription) (*domain.Subscription, error) {
	s.ID = f.nextID
	f.nextID++
	f.subscriptions[s.ID] = s
	return s, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	s, ok := f.subscriptions[id]
	if !ok {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return s, nil
}

func (f *fakeRepo) Update(_ context.Context, s *domain.Subscription) error {
	existing, ok := f.subscriptions[s.ID]
	if !ok {
		return subscriptionRepo.ErrSubscriptionNotFound
	}
	s.CreatedAt = existing.CreatedAt
	f.subscriptions[s.ID] = s
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.subscriptions[id]; !ok {
		return subscriptionRepo.ErrSubscriptionNotFound
	}
	delete(f.subscriptions, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.SubscriptionFilter) ([]*domain.Subscription, error) {
	result := make([]*domain.Subscription, 0)
	for _, s := range f.subscriptions {
		if filter.IsExpired != nil && s.IsExpired != *filter.IsExpired {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (f *fakeRepo) Count(_ context.Context, filter domain.SubscriptionFilter) (int64, error) {
	list, _ := f.List(context.Background(), filter)
	return int64(len(list)), nil
}

func (f *fakeRepo) SearchByName(_ context.Context, _ string) ([]*domain.Subscription, error) {
	return nil, nil
}

func (f *fakeRepo) GetByTrainer(_ context.Context, _ int64, _ *bool) ([]*domain.Subscription, error) {
	return nil, nil
}

func (f *fakeRepo) GetByLocation(_ context.Context, _ int64) ([]*domain.Subscription, error) {
	return nil, nil
}

func (f *fakeRepo) GetByDateWindow(_ context.Context, _ domain.DateWindow) ([]*domain.Subscription, error) {
	return nil, nil
}

func (f *fakeRepo) GetNearby(_ context.Context, _, _, _ float64) ([]*domain.Subscription, error) {
	return nil, nil
}

func (f *fakeRepo) MarkExpired(_ context.Context, now time.Time) (int64, error) {
	var affected int64
	for _, s := range f.subscriptions {
		if !s.IsExpired && s.EffectiveEnd().Before(now) {
			s.IsExpired = true
			affected++
		}
	}
	return affected, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func TestRecomputeExpiry_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.subscriptions[1] = &domain.Subscription{ID: 1, StartDate: day("2026-08-01")}
	repo.subscriptions[2] = &domain.Subscription{ID: 2, StartDate: day("2026-08-01"), EndDate: ptr.Ptr(day("2026-12-01"))}
	repo.subscriptions[3] = &domain.Subscription{ID: 3, StartDate: day("2026-10-01")}

	svc := newTestService(repo, testNow)

	first, err := svc.RecomputeExpiry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	assert.True(t, repo.subscriptions[1].IsExpired)
	assert.False(t, repo.subscriptions[2].IsExpired)
	assert.False(t, repo.subscriptions[3].IsExpired)

	// Повторный прогон с тем же "сейчас" ничего не меняет
	second, err := svc.RecomputeExpiry(context.Background())
	require.NoError(t, err)
	assert.Zero(t, second)
	assert.True(t, repo.subscriptions[1].IsExpired)
	assert.False(t, repo.subscriptions[2].IsExpired)
}

func TestCreate_ValidSubscription(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, testNow)

	resp, err := svc.Create(context.Background(), &models.CreateSubscriptionRequest{
		Name:          "Evening pilates",
		CategoryID:    1,
		SessionTypeID: 2,
		TrainerID:     3,
		LocationID:    4,
		Price:         90,
		IsSingleClass: false,
		StartDate:     day("2026-10-01"),
		EndDate:       ptr.Ptr(day("2026-11-01")),
		StartTime:     mustTime("18:00"),
		EndTime:       mustTime("19:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Evening pilates", resp.Name)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.subscriptions, 1)
}

func TestCreate_RejectsPastDate(t *testing.T) {
	svc := newTestService(newFakeRepo(), testNow)

	_, err := svc.Create(context.Background(), &models.CreateSubscriptionRequest{
		Name:          "Old class",
		CategoryID:    1,
		SessionTypeID: 2,
		TrainerID:     3,
		LocationID:    4,
		Price:         50,
		IsSingleClass: true,
		StartDate:     day("2026-09-01"),
		StartTime:     mustTime("10:00"),
		EndTime:       mustTime("11:00"),
	})

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestList_RunsSweepBeforeFiltering(t *testing.T) {
	repo := newFakeRepo()
	repo.subscriptions[1] = &domain.Subscription{ID: 1, StartDate: day("2026-08-01")}
	svc := newTestService(repo, testNow)

	expired := true
	resp, err := svc.List(context.Background(), &models.FilterRequest{IsExpired: &expired})

	require.NoError(t, err)
	require.Len(t, resp.Subscriptions, 1)
	assert.True(t, resp.Subscriptions[0].IsExpired)
}
