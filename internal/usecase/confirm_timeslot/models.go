package confirm_timeslot

import "time"

// Request модель запроса на подтверждение слота
type Request struct {
	TimeSlotID int64  // ID слота
	CustomerID int64  // ID клиента
	GroomerID  *int64 // Явно указанный грумер (опционально)
}

// Response модель ответа с подтверждённым слотом
type Response struct {
	TimeSlotID  int64     // ID слота
	GroomerID   int64     // Эффективный грумер
	CustomerID  int64     // ID клиента
	BookingDate time.Time // Дата слота
	StartTime   time.Time // Начало слота
	EndTime     time.Time // Конец слота
	IsBooked    bool      // Всегда true после подтверждения
}
