package update_manual_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_manual_booking: booking not found")

	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("update_manual_booking: time slot not found")

	// ErrConflict возвращается, когда новый интервал пересекается
	// с существующим обязательством грумера
	ErrConflict = errors.New("update_manual_booking: groomer already committed for this interval")

	// ErrHoliday возвращается, когда новый интервал попадает в блэкаут
	ErrHoliday = errors.New("update_manual_booking: interval falls on a holiday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_manual_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_manual_booking: internal error")
)
