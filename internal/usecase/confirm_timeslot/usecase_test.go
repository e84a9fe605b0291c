package confirm_timeslot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
	"github.com/petfit/booking-service/pkg/ptr"
)

type fakeSlotRepo struct {
	slots       map[int64]*domain.TimeSlot
	commitments []domain.Commitment
	confirmErr  error
	confirmed   []int64
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) BookedCommitmentsFor(_ context.Context, _ int64, _ time.Time, _ int64) ([]domain.Commitment, error) {
	return f.commitments, nil
}

func (f *fakeSlotRepo) ConfirmIfFree(_ context.Context, slotID, customerID, groomerID int64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed = append(f.confirmed, slotID)
	s := f.slots[slotID]
	s.IsBooked = true
	s.CustomerID = &customerID
	s.GroomerID = groomerID
	return nil
}

type fakeBookingRepo struct {
	commitments []domain.Commitment
}

func (f *fakeBookingRepo) CommitmentsForDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]domain.Commitment, error) {
	return f.commitments, nil
}

type fakeOrderLineRepo struct {
	commitments []domain.Commitment
}

func (f *fakeOrderLineRepo) CommitmentsForDate(_ context.Context, _ int64, _ time.Time) ([]domain.Commitment, error) {
	return f.commitments, nil
}

type fakeHolidayRepo struct {
	blocking *domain.Holiday
}

func (f *fakeHolidayRepo) FindBlocking(_ context.Context, _ int64, _ time.Time) (*domain.Holiday, error) {
	return f.blocking, nil
}

type fakeNotifier struct {
	customerCalls int
	groomerCalls  int
}

func (f *fakeNotifier) SendToCustomer(_ context.Context, _ int64, _, _ string) { f.customerCalls++ }
func (f *fakeNotifier) SendToGroomer(_ context.Context, _ int64, _, _ string)  { f.groomerCalls++ }

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

func freeSlot() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[int64]*domain.TimeSlot{
		1: {
			ID:          1,
			GroomerID:   5,
			BookingDate: mustDate("2026-10-01"),
			StartTime:   mustInstant("2026-10-01T10:00:00Z"),
			EndTime:     mustInstant("2026-10-01T11:00:00Z"),
		},
	}}
}

func newTestUseCase(slots *fakeSlotRepo, bookings *fakeBookingRepo, orders *fakeOrderLineRepo, holidays *fakeHolidayRepo, notifier *fakeNotifier) *UseCase {
	return NewUseCase(slots, bookings, orders, holidays, notifier, &fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	slots := freeSlot()
	notifier := &fakeNotifier{}
	uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	require.NoError(t, err)
	assert.True(t, resp.IsBooked)
	assert.Equal(t, int64(5), resp.GroomerID)
	assert.Equal(t, []int64{1}, slots.confirmed)
	assert.Equal(t, 1, notifier.customerCalls)
	assert.Equal(t, 1, notifier.groomerCalls)
}

func TestExecute_AlreadyBookedSlot(t *testing.T) {
	slots := freeSlot()
	slots.slots[1].IsBooked = true
	uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_LostRaceOnConditionalUpdate(t *testing.T) {
	// Слот выглядел свободным при чтении, но условный UPDATE
	// не нашёл строку с is_booked = false
	slots := freeSlot()
	slots.confirmErr = slotRepo.ErrAlreadyBooked
	notifier := &fakeNotifier{}
	uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, notifier)

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Zero(t, notifier.customerCalls)
}

func TestExecute_GroomerResolution(t *testing.T) {
	tests := []struct {
		name        string
		slotGroomer int64
		explicit    *int64
		wantGroomer int64
		wantErr     error
	}{
		{"slot groomer by default", 5, nil, 5, nil},
		{"explicit matches slot", 5, ptr.Ptr(int64(5)), 5, nil},
		{"explicit fills unassigned slot", 0, ptr.Ptr(int64(7)), 7, nil},
		{"explicit differs from slot", 5, ptr.Ptr(int64(7)), 0, ErrGroomerMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := freeSlot()
			slots.slots[1].GroomerID = tt.slotGroomer
			uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, &fakeNotifier{})

			resp, err := uc.Execute(context.Background(), &Request{
				TimeSlotID: 1,
				CustomerID: 10,
				GroomerID:  tt.explicit,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantGroomer, resp.GroomerID)
		})
	}
}

func TestExecute_OverlappingSlotRejected(t *testing.T) {
	slots := freeSlot()
	slots.commitments = []domain.Commitment{{
		GroomerID: 5,
		Interval: domain.NewInterval(
			mustInstant("2026-10-01T10:30:00Z"),
			mustInstant("2026-10-01T11:30:00Z"),
		),
		Source: domain.SourceTimeSlot,
	}}
	uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, slots.confirmed)
}

func TestExecute_HolidayPrecedence(t *testing.T) {
	// Офисный блэкаут блокирует подтверждение даже при полностью
	// свободном расписании грумера
	slots := freeSlot()
	holidays := &fakeHolidayRepo{blocking: &domain.Holiday{
		ID:        2,
		GroomerID: nil,
		StartDate: mustDate("2026-09-30"),
		EndDate:   mustDate("2026-10-02"),
	}}
	uc := newTestUseCase(slots, &fakeBookingRepo{}, &fakeOrderLineRepo{}, holidays, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrHoliday)
	assert.Empty(t, slots.confirmed)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSlotRepo{slots: map[int64]*domain.TimeSlot{}}, &fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeHolidayRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{TimeSlotID: 1, CustomerID: 10})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}
