package cancel_subscribe

import (
	"context"

	cancelSubscribe "github.com/petfit/booking-service/internal/usecase/cancel_subscribe"
)

type CancelSubscribeUseCase interface {
	Execute(ctx context.Context, req *cancelSubscribe.Request) (*cancelSubscribe.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
