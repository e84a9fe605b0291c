package available_timeslots

import (
	"context"

	getAvailableTimeslots "github.com/petfit/booking-service/internal/usecase/get_available_timeslots"
)

type GetAvailableTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableTimeslots.Request) (*getAvailableTimeslots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
