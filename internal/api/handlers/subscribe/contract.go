package subscribe

import (
	"context"

	subscribeUseCase "github.com/petfit/booking-service/internal/usecase/subscribe"
)

type SubscribeUseCase interface {
	Execute(ctx context.Context, req *subscribeUseCase.Request) (*subscribeUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
