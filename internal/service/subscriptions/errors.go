package subscriptions

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrDateInPast возвращается, когда дата подписки уже прошла
	ErrDateInPast = errors.New("subscription date must be in the future")

	// ErrDateRangeInverted возвращается, когда конец диапазона раньше начала
	ErrDateRangeInverted = errors.New("end date must not be before start date")

	// ErrDateArity возвращается при несоответствии количества дат типу подписки:
	// разовое занятие несёт одну дату, курс — диапазон
	ErrDateArity = errors.New("single class takes one date, course takes a range")

	// ErrTimeRangeInverted возвращается, когда endTime не позже startTime
	ErrTimeRangeInverted = errors.New("end time must be strictly after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
