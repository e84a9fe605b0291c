package masterdata

import (
	"context"

	"github.com/petfit/booking-service/internal/domain"
)

// MasterDataRepository интерфейс репозитория справочников
type MasterDataRepository interface {
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	CreateSessionType(ctx context.Context, st *domain.SessionType) (*domain.SessionType, error)
	GetSessionTypeByID(ctx context.Context, id int64) (*domain.SessionType, error)
	ListSessionTypes(ctx context.Context) ([]*domain.SessionType, error)
	UpdateSessionType(ctx context.Context, st *domain.SessionType) error
	DeleteSessionType(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error)
	GetLocationByID(ctx context.Context, id int64) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]*domain.Location, error)
	UpdateLocation(ctx context.Context, l *domain.Location) error
	DeleteLocation(ctx context.Context, id int64) error

	CreateTaxRate(ctx context.Context, t *domain.TaxRate) (*domain.TaxRate, error)
	GetTaxRateByID(ctx context.Context, id int64) (*domain.TaxRate, error)
	ListTaxRates(ctx context.Context) ([]*domain.TaxRate, error)
	UpdateTaxRate(ctx context.Context, t *domain.TaxRate) error
	DeleteTaxRate(ctx context.Context, id int64) error
}

// HolidayRepository интерфейс репозитория блэкаут-периодов
type HolidayRepository interface {
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	GetByID(ctx context.Context, id int64) (*domain.Holiday, error)
	List(ctx context.Context) ([]*domain.Holiday, error)
	Update(ctx context.Context, h *domain.Holiday) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
