package update_booking

import (
	"context"

	updateManualBooking "github.com/petfit/booking-service/internal/usecase/update_manual_booking"
)

type UpdateManualBookingUseCase interface {
	Execute(ctx context.Context, req *updateManualBooking.Request) (*updateManualBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
