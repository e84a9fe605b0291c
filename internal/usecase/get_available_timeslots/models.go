package get_available_timeslots

import "time"

// Request модель запроса свободных слотов грумера на дату
type Request struct {
	GroomerID int64     // ID грумера
	Date      time.Time // Дата
}

// Slot свободный слот в ответе
type Slot struct {
	ID        int64     // ID слота
	StartTime time.Time // Начало
	EndTime   time.Time // Конец
}

// Response модель ответа со свободными слотами
type Response struct {
	GroomerID int64     // ID грумера
	Date      time.Time // Дата
	Slots     []Slot    // Свободные слоты по возрастанию времени начала
}
