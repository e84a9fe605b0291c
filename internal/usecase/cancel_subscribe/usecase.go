package cancel_subscribe

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	sbRepo "github.com/petfit/booking-service/internal/infra/storage/subscriptionbooking"
)

// UseCase use case отмены бронирования подписки
type UseCase struct {
	bookingRepo SubscriptionBookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo SubscriptionBookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет отмену бронирования подписки.
// Переход одноходовый: active -> cancelled, повторная отмена отклоняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelSubscribe: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, sbRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelSubscribe: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelSubscribe: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Повторная отмена отклоняется
	if booking.IsCancelled() {
		uc.logger.Warn("CancelSubscribe: booking id=%d already cancelled", req.BookingID)
		return nil, ErrAlreadyCancelled
	}

	// 4. Отменяем
	if err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, domain.SubscriptionBookingCancelled); err != nil {
		uc.logger.Error("CancelSubscribe: failed to update status: %v", err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelSubscribe: successfully cancelled booking id=%d", req.BookingID)

	return &Response{
		ID:             booking.ID,
		SubscriptionID: booking.SubscriptionID,
		CustomerID:     booking.CustomerID,
		Status:         string(domain.SubscriptionBookingCancelled),
		UpdatedAt:      booking.UpdatedAt,
	}, nil
}
