package domain

import (
	"fmt"
	"time"
)

// Interval полуоткрытый временной интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал из двух моментов времени
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid возвращает true, если конец интервала строго позже начала
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps возвращает true, если интервалы пересекаются.
// Полуоткрытая семантика: [10:00, 11:00) и [11:00, 12:00) не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains возвращает true, если момент t принадлежит интервалу
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// CommitmentSource источник, из которого пришло существующее обязательство
type CommitmentSource string

const (
	SourceBooking   CommitmentSource = "booking"    // текущие ручные бронирования
	SourceOrderLine CommitmentSource = "order_line" // бронирования из старого order-флоу
	SourceTimeSlot  CommitmentSource = "time_slot"  // подтверждённые слоты
)

// Commitment существующее обязательство ресурса (грумера/тренера),
// блокирующее новое бронирование на пересекающийся интервал.
type Commitment struct {
	GroomerID int64
	Interval  Interval
	Source    CommitmentSource
}

// ConflictsWith возвращает true, если обязательство блокирует кандидата:
// тот же ресурс и пересекающийся интервал
func (c Commitment) ConflictsWith(candidate Commitment) bool {
	return c.GroomerID == candidate.GroomerID && c.Interval.Overlaps(candidate.Interval)
}

// FindConflict ищет первое обязательство, конфликтующее с кандидатом.
// Возвращает nil, если конфликтов нет.
func FindConflict(candidate Commitment, existing []Commitment) *Commitment {
	for i := range existing {
		if existing[i].ConflictsWith(candidate) {
			return &existing[i]
		}
	}
	return nil
}
