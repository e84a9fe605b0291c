package get_available_timeslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petfit/booking-service/internal/domain"
)

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) ListFree(_ context.Context, _ int64, _ time.Time) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

type fakeHolidayRepo struct {
	blocked map[time.Time]*domain.Holiday
}

func (f *fakeHolidayRepo) FindBlocking(_ context.Context, _ int64, at time.Time) (*domain.Holiday, error) {
	return f.blocked[at], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	slots := &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, StartTime: mustInstant("2026-10-01T10:00:00Z"), EndTime: mustInstant("2026-10-01T11:00:00Z")},
		{ID: 2, StartTime: mustInstant("2026-10-01T11:00:00Z"), EndTime: mustInstant("2026-10-01T12:00:00Z")},
	}}
	uc := NewUseCase(slots, &fakeHolidayRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: 5, Date: mustDate("2026-10-01")})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
}

func TestExecute_HolidayHidesSlots(t *testing.T) {
	start := mustInstant("2026-10-01T10:00:00Z")
	slots := &fakeSlotRepo{slots: []*domain.TimeSlot{
		{ID: 1, StartTime: start, EndTime: mustInstant("2026-10-01T11:00:00Z")},
		{ID: 2, StartTime: mustInstant("2026-10-01T11:00:00Z"), EndTime: mustInstant("2026-10-01T12:00:00Z")},
	}}
	holidays := &fakeHolidayRepo{blocked: map[time.Time]*domain.Holiday{
		start: {ID: 9},
	}}
	uc := NewUseCase(slots, holidays, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: 5, Date: mustDate("2026-10-01")})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(2), resp.Slots[0].ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeHolidayRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{GroomerID: 0, Date: mustDate("2026-10-01")})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
