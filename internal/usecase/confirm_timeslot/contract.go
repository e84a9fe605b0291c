package confirm_timeslot

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	BookedCommitmentsFor(ctx context.Context, groomerID int64, date time.Time, excludeSlotID int64) ([]domain.Commitment, error)
	ConfirmIfFree(ctx context.Context, slotID, customerID, groomerID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CommitmentsForDate(ctx context.Context, groomerID int64, date time.Time, excludeID *int64) ([]domain.Commitment, error)
}

// OrderLineRepository интерфейс read-only репозитория строк старых заказов
type OrderLineRepository interface {
	CommitmentsForDate(ctx context.Context, groomerID int64, date time.Time) ([]domain.Commitment, error)
}

// HolidayRepository интерфейс репозитория блэкаутов
type HolidayRepository interface {
	FindBlocking(ctx context.Context, groomerID int64, at time.Time) (*domain.Holiday, error)
}

// Notifier интерфейс отправки push-уведомлений (fire-and-forget)
type Notifier interface {
	SendToCustomer(ctx context.Context, customerID int64, title, message string)
	SendToGroomer(ctx context.Context, groomerID int64, title, message string)
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
