package subscriptions

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	Create(ctx context.Context, s *domain.Subscription) (*domain.Subscription, error)
	GetByID(ctx context.Context, id int64) (*domain.Subscription, error)
	Update(ctx context.Context, s *domain.Subscription) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.SubscriptionFilter) ([]*domain.Subscription, error)
	Count(ctx context.Context, filter domain.SubscriptionFilter) (int64, error)
	SearchByName(ctx context.Context, keyword string) ([]*domain.Subscription, error)
	GetByTrainer(ctx context.Context, trainerID int64, isExpired *bool) ([]*domain.Subscription, error)
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.Subscription, error)
	GetByDateWindow(ctx context.Context, window domain.DateWindow) ([]*domain.Subscription, error)
	GetNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*domain.Subscription, error)
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
