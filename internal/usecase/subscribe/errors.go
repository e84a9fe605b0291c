package subscribe

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда подписка не найдена
	ErrSubscriptionNotFound = errors.New("subscribe: subscription not found")

	// ErrSubscriptionExpired возвращается при попытке забронировать истёкшую подписку
	ErrSubscriptionExpired = errors.New("subscribe: subscription is expired")

	// ErrAlreadyBooked возвращается, когда клиент уже бронировал эту подписку
	ErrAlreadyBooked = errors.New("subscribe: customer already booked this subscription")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("subscribe: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("subscribe: internal error")
)
