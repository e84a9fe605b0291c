package confirm_timeslot

import (
	"context"

	confirmTimeslot "github.com/petfit/booking-service/internal/usecase/confirm_timeslot"
)

type ConfirmTimeSlotUseCase interface {
	Execute(ctx context.Context, req *confirmTimeslot.Request) (*confirmTimeslot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
