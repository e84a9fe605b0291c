package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petfit/booking-service/pkg/ptr"
	"github.com/petfit/booking-service/pkg/types"
)

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Фиксированное "сейчас": 15 сентября 2026, 12:00
var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func TestValidateDatesAndTimes_SingleClass(t *testing.T) {
	tests := []struct {
		name      string
		startDate time.Time
		endDate   *time.Time
		startTime types.TimeString
		endTime   types.TimeString
		wantErr   error
	}{
		{
			name:      "future date accepted",
			startDate: day("2026-10-01"),
			startTime: mustTime("10:00"),
			endTime:   mustTime("11:00"),
		},
		{
			name:      "yesterday rejected",
			startDate: day("2026-09-14"),
			startTime: mustTime("10:00"),
			endTime:   mustTime("11:00"),
			wantErr:   ErrDateInPast,
		},
		{
			name:      "today with start time ahead of now accepted",
			startDate: day("2026-09-15"),
			startTime: mustTime("14:00"),
			endTime:   mustTime("15:00"),
		},
		{
			name:      "today with start time already passed rejected",
			startDate: day("2026-09-15"),
			startTime: mustTime("10:00"),
			endTime:   mustTime("11:00"),
			wantErr:   ErrDateInPast,
		},
		{
			name:      "single class with end date rejected",
			startDate: day("2026-10-01"),
			endDate:   ptr.Ptr(day("2026-10-02")),
			startTime: mustTime("10:00"),
			endTime:   mustTime("11:00"),
			wantErr:   ErrDateArity,
		},
		{
			name:      "end time equal to start time rejected",
			startDate: day("2026-10-01"),
			startTime: mustTime("10:00"),
			endTime:   mustTime("10:00"),
			wantErr:   ErrTimeRangeInverted,
		},
		{
			name:      "end time before start time rejected",
			startDate: day("2026-10-01"),
			startTime: mustTime("10:00"),
			endTime:   mustTime("09:00"),
			wantErr:   ErrTimeRangeInverted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDatesAndTimes(tt.startDate, tt.endDate, tt.startTime, tt.endTime, true, testNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDatesAndTimes_Course(t *testing.T) {
	tests := []struct {
		name      string
		startDate time.Time
		endDate   *time.Time
		wantErr   error
	}{
		{
			name:      "valid range accepted",
			startDate: day("2026-10-01"),
			endDate:   ptr.Ptr(day("2026-12-01")),
		},
		{
			name:      "missing end date rejected",
			startDate: day("2026-10-01"),
			wantErr:   ErrDateArity,
		},
		{
			name:      "inverted range rejected",
			startDate: day("2026-12-01"),
			endDate:   ptr.Ptr(day("2026-10-01")),
			wantErr:   ErrDateRangeInverted,
		},
		{
			name:      "end date in the past rejected",
			startDate: day("2026-09-14"),
			endDate:   ptr.Ptr(day("2026-09-14")),
			wantErr:   ErrDateInPast,
		},
		{
			name:      "same-day range accepted",
			startDate: day("2026-10-01"),
			endDate:   ptr.Ptr(day("2026-10-01")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDatesAndTimes(tt.startDate, tt.endDate, mustTime("10:00"), mustTime("11:00"), false, testNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
