package update_manual_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	bookingRepo "github.com/petfit/booking-service/internal/infra/storage/booking"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
	"github.com/petfit/booking-service/pkg/ptr"
)

// UseCase use case для обновления ручного бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	orderLineRepo OrderLineRepository
	slotRepo      TimeSlotRepository
	holidayRepo   HolidayRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	orderLineRepo OrderLineRepository,
	slotRepo TimeSlotRepository,
	holidayRepo HolidayRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		orderLineRepo: orderLineRepo,
		slotRepo:      slotRepo,
		holidayRepo:   holidayRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case обновления бронирования.
// Скан конфликтов исключает само бронирование: перенос на тот же
// слот/грумера/дату всегда проходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateManualBooking: booking=%d, groomer=%d, slot=%d, date=%s",
		req.BookingID, req.GroomerID, req.TimeSlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateManualBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateManualBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateManualBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Получаем новый слот
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("UpdateManualBooking: slot id=%d not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("UpdateManualBooking: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 4. Слот должен принадлежать запрошенному грумеру и дате
	if err := validateSlotMatchesRequest(slot, req); err != nil {
		uc.logger.Warn("UpdateManualBooking: slot mismatch: %v", err)
		return nil, err
	}

	candidate := domain.Commitment{
		GroomerID: req.GroomerID,
		Interval:  slot.Interval(),
		Source:    domain.SourceBooking,
	}

	// 5. Скан конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блэкаут
		blocking, err := uc.holidayRepo.FindBlocking(txCtx, req.GroomerID, candidate.Interval.Start)
		if err != nil {
			uc.logger.Error("UpdateManualBooking: failed to check holidays: %v", err)
			return fmt.Errorf("%w: failed to check holidays: %v", ErrInternal, err)
		}
		if blocking != nil {
			uc.logger.Warn("UpdateManualBooking: interval blocked by holiday id=%d", blocking.ID)
			return ErrHoliday
		}

		// 5.2. Обязательства грумера на дату, исключая само бронирование
		commitments, err := uc.bookingRepo.CommitmentsForDate(txCtx, req.GroomerID, req.Date, ptr.Ptr(req.BookingID))
		if err != nil {
			uc.logger.Error("UpdateManualBooking: failed to get booking commitments: %v", err)
			return fmt.Errorf("%w: failed to get booking commitments: %v", ErrInternal, err)
		}

		orderCommitments, err := uc.orderLineRepo.CommitmentsForDate(txCtx, req.GroomerID, req.Date)
		if err != nil {
			uc.logger.Error("UpdateManualBooking: failed to get order line commitments: %v", err)
			return fmt.Errorf("%w: failed to get order line commitments: %v", ErrInternal, err)
		}
		commitments = append(commitments, orderCommitments...)

		// 5.3. Интервальная проверка пересечения
		if conflict := domain.FindConflict(candidate, commitments); conflict != nil {
			uc.logger.Warn("UpdateManualBooking: conflict with %s at %s",
				conflict.Source, conflict.Interval)
			return ErrConflict
		}

		// 5.4. Переносим бронирование
		booking.GroomerID = req.GroomerID
		booking.TimeSlotID = req.TimeSlotID
		booking.BookingDate = req.Date
		booking.SlotStartTime = slot.StartTime
		booking.SlotEndTime = slot.EndTime
		booking.SubServiceID = req.SubServiceID

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateManualBooking: unique index rejected groomer=%d start=%s",
					req.GroomerID, slot.StartTime.Format(domain.TimeFormat))
				return ErrConflict
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateManualBooking: failed to update booking: %v", err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateManualBooking: successfully updated booking id=%d", booking.ID)

	return &Response{
		ID:            booking.ID,
		Reference:     booking.Reference,
		CustomerID:    booking.CustomerID,
		GroomerID:     booking.GroomerID,
		TimeSlotID:    booking.TimeSlotID,
		SubServiceID:  booking.SubServiceID,
		BookingDate:   booking.BookingDate,
		SlotStartTime: booking.SlotStartTime,
		SlotEndTime:   booking.SlotEndTime,
		Status:        string(booking.Status),
		Price:         booking.Price,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}, nil
}
