package cancel_subscribe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	sbRepo "github.com/petfit/booking-service/internal/infra/storage/subscriptionbooking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.SubscriptionBooking
	updates  []domain.SubscriptionBookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.SubscriptionBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, sbRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.SubscriptionBookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return sbRepo.ErrBookingNotFound
	}
	b.Status = status
	f.updates = append(f.updates, status)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.SubscriptionBooking{
		1: {ID: 1, SubscriptionID: 2, CustomerID: 10, Status: domain.SubscriptionBookingActive},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 1})

	require.NoError(t, err)
	assert.Equal(t, string(domain.SubscriptionBookingCancelled), resp.Status)
	assert.Equal(t, []domain.SubscriptionBookingStatus{domain.SubscriptionBookingCancelled}, repo.updates)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.SubscriptionBooking{
		1: {ID: 1, Status: domain.SubscriptionBookingCancelled},
	}}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, repo.updates)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{bookings: map[int64]*domain.SubscriptionBooking{}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 1})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
