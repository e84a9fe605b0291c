package update_manual_booking

import "time"

// Request модель запроса на обновление ручного бронирования:
// перенос на другого грумера, слот, дату или под-услугу
type Request struct {
	BookingID    int64     // ID бронирования
	GroomerID    int64     // Новый грумер
	TimeSlotID   int64     // Новый слот
	Date         time.Time // Новая дата
	SubServiceID *int64    // Новая под-услуга (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID            int64     // ID бронирования
	Reference     string    // Публичный uuid
	CustomerID    int64     // ID клиента
	GroomerID     int64     // ID грумера
	TimeSlotID    int64     // ID слота
	SubServiceID  *int64    // ID под-услуги
	BookingDate   time.Time // Дата бронирования
	SlotStartTime time.Time // Начало слота
	SlotEndTime   time.Time // Конец слота
	Status        string    // Статус
	Price         float64   // Цена
	Notes         *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
