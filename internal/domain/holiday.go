package domain

import "time"

// Holiday блэкаут-период: либо для конкретного грумера,
// либо для всего офиса (GroomerID == nil)
type Holiday struct {
	ID        int64
	GroomerID *int64
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOfficeWide возвращает true, если блэкаут закрывает весь салон
func (h *Holiday) IsOfficeWide() bool {
	return h.GroomerID == nil
}

// AppliesTo возвращает true, если блэкаут распространяется на грумера
func (h *Holiday) AppliesTo(groomerID int64) bool {
	return h.IsOfficeWide() || *h.GroomerID == groomerID
}

// Covers возвращает true, если момент t попадает в период блэкаута.
// Границы включительные: [StartDate, EndDate].
func (h *Holiday) Covers(t time.Time) bool {
	return !t.Before(h.StartDate) && !t.After(h.EndDate)
}

// Blocks возвращает true, если блэкаут запрещает бронирование
// указанного грумера в момент start
func (h *Holiday) Blocks(groomerID int64, start time.Time) bool {
	return h.AppliesTo(groomerID) && h.Covers(start)
}
