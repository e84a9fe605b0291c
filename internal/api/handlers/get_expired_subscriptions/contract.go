package get_expired_subscriptions

import (
	"context"

	"github.com/petfit/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetExpiredSubscriptionBookings(ctx context.Context) (*models.SubscriptionBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
