package create_manual_booking

import "time"

// Request модель запроса на создание ручного бронирования
type Request struct {
	CustomerID    int64     // ID клиента
	PetID         *int64    // ID питомца (опционально)
	ServiceTypeID *int64    // ID типа услуги (опционально)
	SubServiceID  *int64    // ID под-услуги (опционально)
	GroomerID     int64     // ID грумера
	TimeSlotID    int64     // ID временного слота
	Date          time.Time // Дата бронирования (без времени)
	Status        *string   // Начальный статус (опционально, по умолчанию pending)
	Price         float64   // Цена
	Notes         *string   // Заметки (опционально)
	PetWeight     *float64  // Вес питомца (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	Reference     string    // Публичный uuid бронирования
	CustomerID    int64     // ID клиента
	PetID         *int64    // ID питомца
	ServiceTypeID *int64    // ID типа услуги
	SubServiceID  *int64    // ID под-услуги
	GroomerID     int64     // ID грумера
	TimeSlotID    int64     // ID слота
	BookingDate   time.Time // Дата бронирования
	SlotStartTime time.Time // Начало слота
	SlotEndTime   time.Time // Конец слота
	Status        string    // Статус
	Price         float64   // Цена
	Notes         *string   // Заметки
	PetWeight     *float64  // Вес питомца

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
