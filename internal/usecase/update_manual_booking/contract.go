package update_manual_booking

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	CommitmentsForDate(ctx context.Context, groomerID int64, date time.Time, excludeID *int64) ([]domain.Commitment, error)
}

// OrderLineRepository интерфейс read-only репозитория строк старых заказов
type OrderLineRepository interface {
	CommitmentsForDate(ctx context.Context, groomerID int64, date time.Time) ([]domain.Commitment, error)
}

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// HolidayRepository интерфейс репозитория блэкаутов
type HolidayRepository interface {
	FindBlocking(ctx context.Context, groomerID int64, at time.Time) (*domain.Holiday, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
