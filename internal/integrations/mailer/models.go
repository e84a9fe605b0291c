package mailer

// BookingConfirmation письмо-подтверждение бронирования
type BookingConfirmation struct {
	UserID    int64  `json:"user_id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// ErrorResponse модель ошибки от почтового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
