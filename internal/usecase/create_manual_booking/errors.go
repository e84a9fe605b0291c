package create_manual_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("create_manual_booking: time slot not found")

	// ErrConflict возвращается, когда интервал пересекается с существующим
	// обязательством грумера (бронирование, старый заказ или занятый слот)
	ErrConflict = errors.New("create_manual_booking: groomer already committed for this interval")

	// ErrHoliday возвращается, когда интервал попадает в блэкаут
	ErrHoliday = errors.New("create_manual_booking: interval falls on a holiday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_manual_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_manual_booking: internal error")
)
