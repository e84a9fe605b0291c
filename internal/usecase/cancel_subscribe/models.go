package cancel_subscribe

import "time"

// Request модель запроса на отмену бронирования подписки
type Request struct {
	BookingID int64 // ID бронирования
}

// Response модель ответа с отменённым бронированием
type Response struct {
	ID             int64     // ID бронирования
	SubscriptionID int64     // ID подписки
	CustomerID     int64     // ID клиента
	Status         string    // Всегда cancelled
	UpdatedAt      time.Time // Время обновления
}
