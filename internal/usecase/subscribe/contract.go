package subscribe

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
}

// SubscriptionBookingRepository интерфейс репозитория бронирований подписок
type SubscriptionBookingRepository interface {
	Create(ctx context.Context, booking *domain.SubscriptionBooking) (*domain.SubscriptionBooking, error)
	GetByID(ctx context.Context, id int64) (*domain.SubscriptionBooking, error)
}

// Notifier интерфейс отправки push-уведомлений (fire-and-forget)
type Notifier interface {
	SendToCustomer(ctx context.Context, customerID int64, title, message string)
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
