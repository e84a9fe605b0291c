package domain

import "time"

// TimeSlot дискретный бронируемый слот грумера.
// Слоты создаются заранее (вне этого сервиса) и переходят
// unbooked → booked при подтверждении; обратного перехода здесь нет.
type TimeSlot struct {
	ID          int64
	GroomerID   int64
	BookingDate time.Time
	StartTime   time.Time
	EndTime     time.Time
	IsBooked    bool
	CustomerID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Interval возвращает временной интервал слота
func (s *TimeSlot) Interval() Interval {
	return NewInterval(s.StartTime, s.EndTime)
}

// Commitment возвращает обязательство, которое занятый слот
// накладывает на грумера
func (s *TimeSlot) Commitment() Commitment {
	return Commitment{
		GroomerID: s.GroomerID,
		Interval:  s.Interval(),
		Source:    SourceTimeSlot,
	}
}
