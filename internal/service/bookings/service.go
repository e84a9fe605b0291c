package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/petfit/booking-service/internal/infra/storage/booking"
	"github.com/petfit/booking-service/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований.
// Создание и обновление живут в usecase-слое: там скан конфликтов.
type Service struct {
	bookingRepo BookingRepository
	sbRepo      SubscriptionBookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	sbRepo SubscriptionBookingRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		sbRepo:      sbRepo,
		logger:      logger,
	}
}

// GetByID получает ручное бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetAll получает все ручные бронирования
func (s *Service) GetAll(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет ручное бронирование. Скан конфликтов не нужен:
// удаление только освобождает интервал.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// GetCustomerSubscriptionBookings получает бронирования подписок клиента
// вместе с данными подписок
func (s *Service) GetCustomerSubscriptionBookings(ctx context.Context, customerID int64) (*models.SubscriptionBookingListResponse, error) {
	s.logger.Info("GetCustomerSubscriptionBookings: customer=%d", customerID)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	bookings, err := s.sbRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerSubscriptionBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCustomerSubscriptionBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionBookingList(bookings), nil
}

// GetSubscriptionCustomers получает бронирования конкретной подписки:
// список записавшихся клиентов
func (s *Service) GetSubscriptionCustomers(ctx context.Context, subscriptionID int64) (*models.SubscriptionBookingListResponse, error) {
	s.logger.Info("GetSubscriptionCustomers: subscription=%d", subscriptionID)

	if subscriptionID <= 0 {
		return nil, fmt.Errorf("%w: subscriptionID must be positive", ErrInvalidInput)
	}

	bookings, err := s.sbRepo.GetBySubscription(ctx, subscriptionID)
	if err != nil {
		s.logger.Error("GetSubscriptionCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSubscriptionCustomers - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionBookingList(bookings), nil
}

// GetAllSubscriptionBookings получает все бронирования подписок
func (s *Service) GetAllSubscriptionBookings(ctx context.Context) (*models.SubscriptionBookingListResponse, error) {
	s.logger.Info("GetAllSubscriptionBookings: fetching all subscription bookings")

	bookings, err := s.sbRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllSubscriptionBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllSubscriptionBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionBookingList(bookings), nil
}

// GetExpiredSubscriptionBookings получает активные бронирования
// истёкших подписок
func (s *Service) GetExpiredSubscriptionBookings(ctx context.Context) (*models.SubscriptionBookingListResponse, error) {
	s.logger.Info("GetExpiredSubscriptionBookings: fetching expired subscription bookings")

	bookings, err := s.sbRepo.GetExpired(ctx)
	if err != nil {
		s.logger.Error("GetExpiredSubscriptionBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetExpiredSubscriptionBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSubscriptionBookingList(bookings), nil
}
