package get_available_timeslots

import (
	"context"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// TimeSlotRepository интерфейс репозитория временных слотов
type TimeSlotRepository interface {
	ListFree(ctx context.Context, groomerID int64, date time.Time) ([]*domain.TimeSlot, error)
}

// HolidayRepository интерфейс репозитория блэкаутов
type HolidayRepository interface {
	FindBlocking(ctx context.Context, groomerID int64, at time.Time) (*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
