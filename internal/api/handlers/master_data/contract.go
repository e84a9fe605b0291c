package master_data

import (
	"context"

	"github.com/petfit/booking-service/internal/service/masterdata/models"
)

type MasterDataService interface {
	CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error)
	GetCategory(ctx context.Context, id int64) (*models.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]*models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *models.CategoryRequest) (*models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateSessionType(ctx context.Context, req *models.SessionTypeRequest) (*models.SessionTypeResponse, error)
	GetSessionType(ctx context.Context, id int64) (*models.SessionTypeResponse, error)
	ListSessionTypes(ctx context.Context) ([]*models.SessionTypeResponse, error)
	UpdateSessionType(ctx context.Context, id int64, req *models.SessionTypeRequest) (*models.SessionTypeResponse, error)
	DeleteSessionType(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, req *models.LocationRequest) (*models.LocationResponse, error)
	GetLocation(ctx context.Context, id int64) (*models.LocationResponse, error)
	ListLocations(ctx context.Context) ([]*models.LocationResponse, error)
	UpdateLocation(ctx context.Context, id int64, req *models.LocationRequest) (*models.LocationResponse, error)
	DeleteLocation(ctx context.Context, id int64) error

	CreateTaxRate(ctx context.Context, req *models.TaxRateRequest) (*models.TaxRateResponse, error)
	GetTaxRate(ctx context.Context, id int64) (*models.TaxRateResponse, error)
	ListTaxRates(ctx context.Context) ([]*models.TaxRateResponse, error)
	UpdateTaxRate(ctx context.Context, id int64, req *models.TaxRateRequest) (*models.TaxRateResponse, error)
	DeleteTaxRate(ctx context.Context, id int64) error

	CreateHoliday(ctx context.Context, req *models.HolidayRequest) (*models.HolidayResponse, error)
	GetHoliday(ctx context.Context, id int64) (*models.HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]*models.HolidayResponse, error)
	UpdateHoliday(ctx context.Context, id int64, req *models.HolidayRequest) (*models.HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
