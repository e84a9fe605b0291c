package masterdata

import "errors"

var (
	// ErrNotFound возвращается, когда справочная запись не найдена
	ErrNotFound = errors.New("masterdata.service: record not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("masterdata.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("masterdata.service: internal error")
)
