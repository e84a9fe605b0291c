package create_manual_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
	"github.com/petfit/booking-service/internal/integrations/mailer"
)

type fakeBookingRepo struct {
	commitments []domain.Commitment
	created     []*domain.Booking
	createErr   error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
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

type fakeNotifier struct {
	customerCalls int
	groomerCalls  int
}

func (f *fakeNotifier) SendToCustomer(_ context.Context, _ int64, _, _ string) { f.customerCalls++ }
func (f *fakeNotifier) SendToGroomer(_ context.Context, _ int64, _, _ string)  { f.groomerCalls++ }

type fakeMailer struct {
	sent []mailer.BookingConfirmation
}

func (f *fakeMailer) SendBookingConfirmation(_ context.Context, c mailer.BookingConfirmation) {
	f.sent = append(f.sent, c)
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

func newTestUseCase(bookings *fakeBookingRepo, orders *fakeOrderLineRepo, slots *fakeSlotRepo, holidays *fakeHolidayRepo, notifier *fakeNotifier, mail *fakeMailer) *UseCase {
	return NewUseCase(bookings, orders, slots, holidays, notifier, mail, &fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerID: 10,
		GroomerID:  5,
		TimeSlotID: 1,
		Date:       mustDate("2026-10-01"),
		Price:      45.0,
	}
}

func slotFixture() *fakeSlotRepo {
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

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	mail := &fakeMailer{}
	uc := newTestUseCase(bookings, &fakeOrderLineRepo{}, slotFixture(), &fakeHolidayRepo{}, notifier, mail)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, mustInstant("2026-10-01T10:00:00Z"), resp.SlotStartTime)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, 1, notifier.customerCalls)
	assert.Equal(t, 1, notifier.groomerCalls)
	assert.Len(t, mail.sent, 1)
}

func TestExecute_PartialOverlapRejected(t *testing.T) {
	// Существующее обязательство [10:30, 11:30) пересекается
	// с кандидатом [10:00, 11:00)
	bookings := &fakeBookingRepo{
		commitments: []domain.Commitment{{
			GroomerID: 5,
			Interval: domain.NewInterval(
				mustInstant("2026-10-01T10:30:00Z"),
				mustInstant("2026-10-01T11:30:00Z"),
			),
			Source: domain.SourceBooking,
		}},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(bookings, &fakeOrderLineRepo{}, slotFixture(), &fakeHolidayRepo{}, notifier, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, bookings.created)
	assert.Zero(t, notifier.customerCalls)
}

func TestExecute_AdjacentIntervalAccepted(t *testing.T) {
	// Существующее обязательство [11:00, 12:00) смежно с кандидатом
	// [10:00, 11:00) и не должно блокировать
	bookings := &fakeBookingRepo{
		commitments: []domain.Commitment{{
			GroomerID: 5,
			Interval: domain.NewInterval(
				mustInstant("2026-10-01T11:00:00Z"),
				mustInstant("2026-10-01T12:00:00Z"),
			),
			Source: domain.SourceBooking,
		}},
	}
	uc := newTestUseCase(bookings, &fakeOrderLineRepo{}, slotFixture(), &fakeHolidayRepo{}, &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, bookings.created, 1)
}

func TestExecute_OrderLineCommitmentRejected(t *testing.T) {
	// Строки старых заказов учитываются наравне с бронированиями
	orders := &fakeOrderLineRepo{
		commitments: []domain.Commitment{{
			GroomerID: 5,
			Interval: domain.NewInterval(
				mustInstant("2026-10-01T10:00:00Z"),
				mustInstant("2026-10-01T11:00:00Z"),
			),
			Source: domain.SourceOrderLine,
		}},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, orders, slotFixture(), &fakeHolidayRepo{}, &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_OfficeWideHolidayRejected(t *testing.T) {
	holidays := &fakeHolidayRepo{blocking: &domain.Holiday{
		ID:        7,
		GroomerID: nil,
		StartDate: mustDate("2026-10-01"),
		EndDate:   mustDate("2026-10-01"),
	}}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeOrderLineRepo{}, slotFixture(), holidays, &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrHoliday)
	assert.Empty(t, bookings.created)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeOrderLineRepo{}, &fakeSlotRepo{slots: map[int64]*domain.TimeSlot{}}, &fakeHolidayRepo{}, &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotGroomerMismatch(t *testing.T) {
	slots := slotFixture()
	slots.slots[1].GroomerID = 99
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeOrderLineRepo{}, slots, &fakeHolidayRepo{}, &fakeNotifier{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"zero groomer", func(r *Request) { r.GroomerID = 0 }},
		{"zero slot", func(r *Request) { r.TimeSlotID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"negative price", func(r *Request) { r.Price = -1 }},
		{"unknown status", func(r *Request) { s := "parked"; r.Status = &s }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeOrderLineRepo{}, slotFixture(), &fakeHolidayRepo{}, &fakeNotifier{}, &fakeMailer{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
