package subscription_customers

import (
	"context"

	"github.com/petfit/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetSubscriptionCustomers(ctx context.Context, subscriptionID int64) (*models.SubscriptionBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
