package domain

import "time"

// BookingStatus represents the status of a manual booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking ручное бронирование: клиент + грумер + слот на конкретную дату
type Booking struct {
	ID            int64
	Reference     string // публичный uuid бронирования
	CustomerID    int64
	PetID         *int64
	ServiceTypeID *int64
	SubServiceID  *int64
	GroomerID     int64
	TimeSlotID    int64
	BookingDate   time.Time

	// Денормализованные границы слота: по ним идёт скан конфликтов
	// без join на time_slots, и на паре (groomer_id, slot_start_time)
	// держится уникальный индекс.
	SlotStartTime time.Time
	SlotEndTime   time.Time

	Status    BookingStatus
	Price     float64
	Notes     *string
	PetWeight *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Commitment возвращает обязательство, которое это бронирование
// накладывает на грумера
func (b *Booking) Commitment() Commitment {
	return Commitment{
		GroomerID: b.GroomerID,
		Interval:  NewInterval(b.SlotStartTime, b.SlotEndTime),
		Source:    SourceBooking,
	}
}

// OrderLine строка заказа из старого order-флоу.
// Read-only источник занятости: учитывается при скане конфликтов,
// но никогда не изменяется этим сервисом.
type OrderLine struct {
	ID            int64
	OrderID       int64
	GroomerID     int64
	BookingDate   time.Time
	SlotStartTime time.Time
	SlotEndTime   time.Time
	ServiceName   string
	CreatedAt     time.Time
}

// Commitment возвращает обязательство, которое строка заказа
// накладывает на грумера
func (l *OrderLine) Commitment() Commitment {
	return Commitment{
		GroomerID: l.GroomerID,
		Interval:  NewInterval(l.SlotStartTime, l.SlotEndTime),
		Source:    SourceOrderLine,
	}
}
