package subscriptionbooking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование подписки не найдено
	ErrBookingNotFound = errors.New("subscriptionbooking.repository: booking not found")

	// ErrDuplicateBooking возвращается при повторном бронировании
	// той же подписки тем же клиентом
	ErrDuplicateBooking = errors.New("subscriptionbooking.repository: customer already booked this subscription")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("subscriptionbooking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("subscriptionbooking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("subscriptionbooking.repository: failed to scan row")
)
