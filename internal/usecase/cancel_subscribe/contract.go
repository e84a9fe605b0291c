package cancel_subscribe

import (
	"context"

	"github.com/petfit/booking-service/internal/domain"
)

// SubscriptionBookingRepository интерфейс репозитория бронирований подписок
type SubscriptionBookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SubscriptionBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionBookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
