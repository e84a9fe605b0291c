package masterdata

import (
	"github.com/petfit/booking-service/pkg/dbmetrics"
)

// Repository репозиторий справочников: категории, типы занятий,
// адреса и налоговые ставки
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}
