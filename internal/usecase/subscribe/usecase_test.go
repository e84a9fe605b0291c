package subscribe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	subscriptionRepo "github.com/petfit/booking-service/internal/infra/storage/subscription"
	sbRepo "github.com/petfit/booking-service/internal/infra/storage/subscriptionbooking"
	"github.com/petfit/booking-service/pkg/ptr"
)

type fakeSubscriptionRepo struct {
	subscriptions map[int64]*domain.Subscription
}

func (f *fakeSubscriptionRepo) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	s, ok := f.subscriptions[id]
	if !ok {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return s, nil
}

type fakeBookingRepo struct {
	created   []*domain.SubscriptionBooking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.SubscriptionBooking) (*domain.SubscriptionBooking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.SubscriptionBooking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, sbRepo.ErrBookingNotFound
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) SendToCustomer(_ context.Context, _ int64, _, _ string) { f.calls++ }

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestUseCase(subs *fakeSubscriptionRepo, bookings *fakeBookingRepo, notifier *fakeNotifier, now time.Time) *UseCase {
	uc := NewUseCase(subs, bookings, notifier, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func activeSubscription() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subscriptions: map[int64]*domain.Subscription{
		1: {
			ID:        1,
			Name:      "Morning yoga",
			Price:     120,
			StartDate: mustDate("2026-10-01"),
			EndDate:   ptr.Ptr(mustDate("2026-12-01")),
			IsActive:  true,
		},
	}}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(activeSubscription(), bookings, notifier, mustDate("2026-09-01"))

	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, CustomerID: 10})

	require.NoError(t, err)
	assert.Equal(t, string(domain.SubscriptionBookingActive), resp.Status)
	assert.Equal(t, "Morning yoga", resp.SubscriptionName)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, 1, notifier.calls)
}

func TestExecute_DuplicateRejected(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: sbRepo.ErrDuplicateBooking}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(activeSubscription(), bookings, notifier, mustDate("2026-09-01"))

	_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Zero(t, notifier.calls)
}

func TestExecute_ExpiredByFlag(t *testing.T) {
	subs := activeSubscription()
	subs.subscriptions[1].IsExpired = true
	uc := newTestUseCase(subs, &fakeBookingRepo{}, &fakeNotifier{}, mustDate("2026-09-01"))

	_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrSubscriptionExpired)
}

func TestExecute_ExpiredByDateBeforeSweep(t *testing.T) {
	// Флаг ещё не проставлен ленивым sweep, но последняя дата уже в прошлом
	uc := newTestUseCase(activeSubscription(), &fakeBookingRepo{}, &fakeNotifier{}, mustDate("2027-01-01"))

	_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrSubscriptionExpired)
}

func TestExecute_SubscriptionNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSubscriptionRepo{subscriptions: map[int64]*domain.Subscription{}}, &fakeBookingRepo{}, &fakeNotifier{}, mustDate("2026-09-01"))

	_, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
