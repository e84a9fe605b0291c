package subscription_catalog

import (
	"context"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	Create(ctx context.Context, req *models.CreateSubscriptionRequest) (*models.SubscriptionResponse, error)
	Update(ctx context.Context, req *models.UpdateSubscriptionRequest) (*models.SubscriptionResponse, error)
	GetByID(ctx context.Context, id int64) (*models.SubscriptionResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req *models.FilterRequest) (*models.SubscriptionListResponse, error)
	Search(ctx context.Context, keyword string) (*models.SubscriptionListResponse, error)
	GetByTrainer(ctx context.Context, trainerID int64, isExpired *bool) (*models.SubscriptionListResponse, error)
	GetByLocation(ctx context.Context, locationID int64) (*models.SubscriptionListResponse, error)
	GetByDateWindow(ctx context.Context, window domain.DateWindow) (*models.SubscriptionListResponse, error)
	GetNearby(ctx context.Context, req *models.NearbyRequest) (*models.SubscriptionListResponse, error)
	GetExpired(ctx context.Context) (*models.SubscriptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
