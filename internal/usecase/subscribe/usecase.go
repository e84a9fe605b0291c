package subscribe

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	subscriptionRepo "github.com/petfit/booking-service/internal/infra/storage/subscription"
	sbRepo "github.com/petfit/booking-service/internal/infra/storage/subscriptionbooking"
)

// UseCase use case бронирования подписки
type UseCase struct {
	subscriptionRepo SubscriptionRepository
	bookingRepo      SubscriptionBookingRepository
	notifier         Notifier
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	subscriptionRepo SubscriptionRepository,
	bookingRepo SubscriptionBookingRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		subscriptionRepo: subscriptionRepo,
		bookingRepo:      bookingRepo,
		notifier:         notifier,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет бронирование подписки.
// Транзакция не нужна: уникальный индекс (subscription_id, customer_id)
// превращает повторную вставку в ErrAlreadyBooked даже при гонке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Subscribe: subscription=%d, customer=%d", req.SubscriptionID, req.CustomerID)

	// 1. Валидация входных данных
	if req.SubscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	// 2. Получаем подписку
	subscription, err := uc.subscriptionRepo.GetByID(ctx, req.SubscriptionID)
	if err != nil {
		if errors.Is(err, subscriptionRepo.ErrSubscriptionNotFound) {
			uc.logger.Warn("Subscribe: subscription id=%d not found", req.SubscriptionID)
			return nil, ErrSubscriptionNotFound
		}
		uc.logger.Error("Subscribe: failed to get subscription id=%d: %v", req.SubscriptionID, err)
		return nil, fmt.Errorf("%w: failed to get subscription: %v", ErrInternal, err)
	}

	// 3. Истечение проверяется по датам, а не по флагу is_expired:
	// sweep ленивый и флаг может отставать
	if subscription.IsExpired || subscription.IsExpiredAt(uc.timeProvider.Now()) {
		uc.logger.Warn("Subscribe: subscription id=%d is expired", req.SubscriptionID)
		return nil, ErrSubscriptionExpired
	}

	// 4. Создаем бронирование
	booking := &domain.SubscriptionBooking{
		SubscriptionID: req.SubscriptionID,
		CustomerID:     req.CustomerID,
		Status:         domain.SubscriptionBookingActive,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, sbRepo.ErrDuplicateBooking) {
			uc.logger.Warn("Subscribe: customer=%d already booked subscription=%d",
				req.CustomerID, req.SubscriptionID)
			return nil, ErrAlreadyBooked
		}
		uc.logger.Error("Subscribe: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("Subscribe: successfully created booking id=%d", created.ID)

	// 5. Уведомление после записи: его ошибка не откатывает бронирование
	uc.notifier.SendToCustomer(ctx, req.CustomerID, "Subscription booked",
		fmt.Sprintf("You are booked for %q starting %s",
			subscription.Name, subscription.StartDate.Format(domain.DateFormat)))

	return &Response{
		ID:               created.ID,
		SubscriptionID:   created.SubscriptionID,
		CustomerID:       created.CustomerID,
		Status:           string(created.Status),
		SubscriptionName: subscription.Name,
		Price:            subscription.Price,
		StartDate:        subscription.StartDate,
		EndDate:          subscription.EndDate,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}
