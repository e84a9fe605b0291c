package confirm_timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("confirm_timeslot: time slot not found")

	// ErrAlreadyBooked возвращается, когда слот уже занят
	ErrAlreadyBooked = errors.New("confirm_timeslot: slot is already booked")

	// ErrGroomerMismatch возвращается, когда явно переданный грумер
	// не совпадает с грумером, назначенным слоту
	ErrGroomerMismatch = errors.New("confirm_timeslot: explicit groomer differs from slot groomer")

	// ErrConflict возвращается, когда интервал слота пересекается
	// с существующим обязательством грумера
	ErrConflict = errors.New("confirm_timeslot: groomer already committed for this interval")

	// ErrHoliday возвращается, когда интервал слота попадает в блэкаут
	ErrHoliday = errors.New("confirm_timeslot: interval falls on a holiday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_timeslot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_timeslot: internal error")
)
