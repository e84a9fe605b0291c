package create_manual_booking

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/internal/integrations/mailer"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// Notifier интерфейс отправки push-уведомлений (fire-and-forget)
type Notifier interface {
	SendToCustomer(ctx context.Context, customerID int64, title, message string)
	SendToGroomer(ctx context.Context, groomerID int64, title, message string)
}

// Mailer интерфейс отправки писем-подтверждений (fire-and-forget)
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, confirmation mailer.BookingConfirmation)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
