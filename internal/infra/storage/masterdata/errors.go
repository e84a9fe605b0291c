package masterdata

import "errors"

var (
	// ErrNotFound возвращается, когда справочная запись не найдена
	ErrNotFound = errors.New("masterdata.repository: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("masterdata.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("masterdata.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("masterdata.repository: failed to scan row")
)
