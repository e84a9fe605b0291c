package bookings

import (
	"context"

	"github.com/petfit/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория ручных бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// SubscriptionBookingRepository интерфейс репозитория бронирований подписок
type SubscriptionBookingRepository interface {
	GetByCustomer(ctx context.Context, customerID int64) ([]*domain.SubscriptionBooking, error)
	GetBySubscription(ctx context.Context, subscriptionID int64) ([]*domain.SubscriptionBooking, error)
	GetAll(ctx context.Context) ([]*domain.SubscriptionBooking, error)
	GetExpired(ctx context.Context) ([]*domain.SubscriptionBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
