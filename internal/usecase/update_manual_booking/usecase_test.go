package update_manual_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	bookingRepo "github.com/petfit/booking-service/internal/infra/storage/booking"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
)

type fakeBookingRepo struct {
	bookings    map[int64]*domain.Booking
	commitments map[int64][]domain.Commitment // ключ — исключаемый booking ID; 0 без исключения
	excludedID  *int64
	updated     bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.bookings[b.ID] = b
	f.updated = true
	return nil
}

func (f *fakeBookingRepo) CommitmentsForDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]domain.Commitment, error) {
	f.excludedID = excludeID
	key := int64(0)
	if excludeID != nil {
		key = *excludeID
	}
	return f.commitments[key], nil
}

type fakeOrderLineRepo struct{}

func (f *fakeOrderLineRepo) CommitmentsForDate(_ context.Context, _ int64, _ time.Time) ([]domain.Commitment, error) {
	return nil, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

type fakeHolidayRepo struct {
	blocking *domain.Holiday
}

func (f *fakeHolidayRepo) FindBlocking(_ context.Context, _ int64, _ time.Time) (*domain.Holiday, error) {
	return f.blocking, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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

func mustInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtures() (*fakeBookingRepo, *fakeSlotRepo) {
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {
				ID:            1,
				Reference:     "ref-1",
				CustomerID:    10,
				GroomerID:     5,
				TimeSlotID:    1,
				BookingDate:   mustDate("2026-10-01"),
				SlotStartTime: mustInstant("2026-10-01T10:00:00Z"),
				SlotEndTime:   mustInstant("2026-10-01T11:00:00Z"),
				Status:        domain.StatusConfirmed,
			},
		},
		commitments: map[int64][]domain.Commitment{},
	}
	slots := &fakeSlotRepo{slots: map[int64]*domain.TimeSlot{
		1: {
			ID:          1,
			GroomerID:   5,
			BookingDate: mustDate("2026-10-01"),
			StartTime:   mustInstant("2026-10-01T10:00:00Z"),
			EndTime:     mustInstant("2026-10-01T11:00:00Z"),
		},
		2: {
			ID:          2,
			GroomerID:   5,
			BookingDate: mustDate("2026-10-02"),
			StartTime:   mustInstant("2026-10-02T14:00:00Z"),
			EndTime:     mustInstant("2026-10-02T15:00:00Z"),
		},
	}}
	return bookings, slots
}

func TestExecute_SelfExclusion(t *testing.T) {
	// Перенос на тот же слот/грумера/дату: без исключения самого себя
	// выборка содержит собственный интервал бронирования
	bookings, slots := fixtures()
	bookings.commitments[0] = []domain.Commitment{{
		GroomerID: 5,
		Interval: domain.NewInterval(
			mustInstant("2026-10-01T10:00:00Z"),
			mustInstant("2026-10-01T11:00:00Z"),
		),
		Source: domain.SourceBooking,
	}}
	// С исключением id=1 обязательств не остаётся
	bookings.commitments[1] = nil

	uc := NewUseCase(bookings, &fakeOrderLineRepo{}, slots, &fakeHolidayRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		GroomerID:  5,
		TimeSlotID: 1,
		Date:       mustDate("2026-10-01"),
	})

	require.NoError(t, err)
	require.NotNil(t, bookings.excludedID)
	assert.Equal(t, int64(1), *bookings.excludedID)
	assert.Equal(t, int64(1), resp.TimeSlotID)
	assert.True(t, bookings.updated)
}

func TestExecute_MoveToNewSlot(t *testing.T) {
	bookings, slots := fixtures()
	uc := NewUseCase(bookings, &fakeOrderLineRepo{}, slots, &fakeHolidayRepo{}, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		GroomerID:  5,
		TimeSlotID: 2,
		Date:       mustDate("2026-10-02"),
	})

	require.NoError(t, err)
	assert.Equal(t, mustInstant("2026-10-02T14:00:00Z"), resp.SlotStartTime)
	assert.Equal(t, mustDate("2026-10-02"), resp.BookingDate)
}

func TestExecute_ConflictOnNewInterval(t *testing.T) {
	bookings, slots := fixtures()
	bookings.commitments[1] = []domain.Commitment{{
		GroomerID: 5,
		Interval: domain.NewInterval(
			mustInstant("2026-10-02T14:30:00Z"),
			mustInstant("2026-10-02T15:30:00Z"),
		),
		Source: domain.SourceBooking,
	}}
	uc := NewUseCase(bookings, &fakeOrderLineRepo{}, slots, &fakeHolidayRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		GroomerID:  5,
		TimeSlotID: 2,
		Date:       mustDate("2026-10-02"),
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, bookings.updated)
}

func TestExecute_HolidayRejected(t *testing.T) {
	bookings, slots := fixtures()
	holidays := &fakeHolidayRepo{blocking: &domain.Holiday{ID: 3}}
	uc := NewUseCase(bookings, &fakeOrderLineRepo{}, slots, holidays, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  1,
		GroomerID:  5,
		TimeSlotID: 2,
		Date:       mustDate("2026-10-02"),
	})

	assert.ErrorIs(t, err, ErrHoliday)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings, slots := fixtures()
	uc := NewUseCase(bookings, &fakeOrderLineRepo{}, slots, &fakeHolidayRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:  42,
		GroomerID:  5,
		TimeSlotID: 1,
		Date:       mustDate("2026-10-01"),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
