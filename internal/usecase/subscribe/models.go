package subscribe

import "time"

// Request модель запроса на бронирование подписки
type Request struct {
	SubscriptionID int64 // ID подписки
	CustomerID     int64 // ID клиента (из контекста аутентификации)
}

// Response модель ответа с созданным бронированием и данными подписки
type Response struct {
	ID             int64  // ID бронирования
	SubscriptionID int64  // ID подписки
	CustomerID     int64  // ID клиента
	Status         string // Статус бронирования

	SubscriptionName string     // Название подписки
	Price            float64    // Цена подписки
	StartDate        time.Time  // Начало действия
	EndDate          *time.Time // Конец действия (nil для разового занятия)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
