package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "identical intervals overlap",
			a:        Interval{Start: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
			b:        Interval{Start: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
			expected: true,
		},
		{
			name:     "partial overlap is detected",
			a:        Interval{Start: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
			b:        Interval{Start: time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)},
			expected: true,
		},
		{
			name:     "adjacent intervals do not overlap",
			a:        Interval{Start: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
			b:        Interval{Start: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)},
			expected: false,
		},
		{
			name:     "disjoint intervals do not overlap",
			a:        Interval{Start: time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)},
			b:        Interval{Start: time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 15, 0, 0, 0, time.UTC)},
			expected: false,
		},
		{
			name:     "contained interval overlaps",
			a:        Interval{Start: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 17, 0, 0, 0, time.UTC)},
			b:        Interval{Start: time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 10, 15, 13, 0, 0, 0, time.UTC)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestFindConflict(t *testing.T) {
	candidate := Commitment{
		GroomerID: 7,
		Interval: Interval{
			Start: mustTime(t, "2025-10-15T10:00:00Z"),
			End:   mustTime(t, "2025-10-15T11:00:00Z"),
		},
		Source: SourceBooking,
	}

	t.Run("same groomer overlapping interval conflicts", func(t *testing.T) {
		existing := []Commitment{
			{
				GroomerID: 7,
				Interval: Interval{
					Start: mustTime(t, "2025-10-15T10:30:00Z"),
					End:   mustTime(t, "2025-10-15T11:30:00Z"),
				},
				Source: SourceOrderLine,
			},
		}

		conflict := FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, SourceOrderLine, conflict.Source)
	})

	t.Run("different groomer does not conflict", func(t *testing.T) {
		existing := []Commitment{
			{
				GroomerID: 8,
				Interval:  candidate.Interval,
				Source:    SourceBooking,
			},
		}

		assert.Nil(t, FindConflict(candidate, existing))
	})

	t.Run("adjacent interval does not conflict", func(t *testing.T) {
		existing := []Commitment{
			{
				GroomerID: 7,
				Interval: Interval{
					Start: mustTime(t, "2025-10-15T11:00:00Z"),
					End:   mustTime(t, "2025-10-15T12:00:00Z"),
				},
				Source: SourceBooking,
			},
		}

		assert.Nil(t, FindConflict(candidate, existing))
	})

	t.Run("empty set never conflicts", func(t *testing.T) {
		assert.Nil(t, FindConflict(candidate, nil))
	})
}

func TestHoliday_Blocks(t *testing.T) {
	groomerID := int64(7)
	start := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC)

	officeWide := Holiday{StartDate: start, EndDate: end}
	personal := Holiday{GroomerID: &groomerID, StartDate: start, EndDate: end}

	inside := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	outside := time.Date(2025, 12, 27, 10, 0, 0, 0, time.UTC)

	// Офисный блэкаут действует на любого грумера
	assert.True(t, officeWide.Blocks(7, inside))
	assert.True(t, officeWide.Blocks(99, inside))
	assert.False(t, officeWide.Blocks(7, outside))

	// Персональный блэкаут действует только на своего грумера
	assert.True(t, personal.Blocks(7, inside))
	assert.False(t, personal.Blocks(8, inside))

	// Границы включительные
	assert.True(t, officeWide.Blocks(7, start))
	assert.True(t, officeWide.Blocks(7, end))
}

func TestSubscription_IsExpiredAt(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	past := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	single := Subscription{IsSingleClass: true, StartDate: past}
	assert.True(t, single.IsExpiredAt(now))

	ranged := Subscription{StartDate: past, EndDate: &future}
	assert.False(t, ranged.IsExpiredAt(now))
	assert.Equal(t, future, ranged.EffectiveEnd())
}
