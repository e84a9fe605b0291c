package create_manual_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/petfit/booking-service/internal/domain"
	bookingRepo "github.com/petfit/booking-service/internal/infra/storage/booking"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
	"github.com/petfit/booking-service/internal/integrations/mailer"
)

// UseCase use case для создания ручного бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	orderLineRepo OrderLineRepository
	slotRepo      TimeSlotRepository
	holidayRepo   HolidayRepository
	notifier      Notifier
	mailer        Mailer
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	orderLineRepo OrderLineRepository,
	slotRepo TimeSlotRepository,
	holidayRepo HolidayRepository,
	notifier Notifier,
	mailerClient Mailer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		orderLineRepo: orderLineRepo,
		slotRepo:      slotRepo,
		holidayRepo:   holidayRepo,
		notifier:      notifier,
		mailer:        mailerClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания ручного бронирования.
// Скан конфликтов и вставка выполняются в сериализуемой транзакции,
// уникальный индекс (groomer_id, slot_start_time) страхует от гонки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateManualBooking: customer=%d, groomer=%d, slot=%d, date=%s",
		req.CustomerID, req.GroomerID, req.TimeSlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateManualBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот: из него берутся границы интервала
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateManualBooking: slot id=%d not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateManualBooking: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Слот должен принадлежать запрошенному грумеру и дате
	if err := validateSlotMatchesRequest(slot, req); err != nil {
		uc.logger.Warn("CreateManualBooking: slot mismatch: %v", err)
		return nil, err
	}

	candidate := domain.Commitment{
		GroomerID: req.GroomerID,
		Interval:  slot.Interval(),
		Source:    domain.SourceBooking,
	}

	status := domain.StatusPending
	if req.Status != nil {
		status = domain.BookingStatus(*req.Status)
	}

	var result *domain.Booking

	// 4. Скан конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блэкаут: персональный или офисный, покрывающий начало интервала
		blocking, err := uc.holidayRepo.FindBlocking(txCtx, req.GroomerID, candidate.Interval.Start)
		if err != nil {
			uc.logger.Error("CreateManualBooking: failed to check holidays: %v", err)
			return fmt.Errorf("%w: failed to check holidays: %v", ErrInternal, err)
		}
		if blocking != nil {
			uc.logger.Warn("CreateManualBooking: interval blocked by holiday id=%d", blocking.ID)
			return ErrHoliday
		}

		// 4.2. Собираем обязательства грумера на дату из всех источников:
		// активные бронирования, строки старых заказов, занятые слоты
		commitments, err := uc.bookingRepo.CommitmentsForDate(txCtx, req.GroomerID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateManualBooking: failed to get booking commitments: %v", err)
			return fmt.Errorf("%w: failed to get booking commitments: %v", ErrInternal, err)
		}

		orderCommitments, err := uc.orderLineRepo.CommitmentsForDate(txCtx, req.GroomerID, req.Date)
		if err != nil {
			uc.logger.Error("CreateManualBooking: failed to get order line commitments: %v", err)
			return fmt.Errorf("%w: failed to get order line commitments: %v", ErrInternal, err)
		}
		commitments = append(commitments, orderCommitments...)

		// 4.3. Интервальная проверка пересечения
		if conflict := domain.FindConflict(candidate, commitments); conflict != nil {
			uc.logger.Warn("CreateManualBooking: conflict with %s at %s",
				conflict.Source, conflict.Interval)
			return ErrConflict
		}

		// 4.4. Создаем бронирование
		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			CustomerID:    req.CustomerID,
			PetID:         req.PetID,
			ServiceTypeID: req.ServiceTypeID,
			SubServiceID:  req.SubServiceID,
			GroomerID:     req.GroomerID,
			TimeSlotID:    req.TimeSlotID,
			BookingDate:   req.Date,
			SlotStartTime: slot.StartTime,
			SlotEndTime:   slot.EndTime,
			Status:        status,
			Price:         req.Price,
			Notes:         req.Notes,
			PetWeight:     req.PetWeight,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateManualBooking: unique index rejected groomer=%d start=%s",
					req.GroomerID, slot.StartTime.Format(domain.TimeFormat))
				return ErrConflict
			}
			uc.logger.Error("CreateManualBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateManualBooking: successfully created booking id=%d reference=%s",
		result.ID, result.Reference)

	// 5. Побочные эффекты после коммита: ошибки логируются внутри
	// клиентов и не откатывают бронирование
	uc.notifier.SendToCustomer(ctx, result.CustomerID, "Booking confirmed",
		fmt.Sprintf("Your booking %s on %s is confirmed", result.Reference, result.BookingDate.Format(domain.DateFormat)))
	uc.notifier.SendToGroomer(ctx, result.GroomerID, "New booking",
		fmt.Sprintf("New booking %s on %s", result.Reference, result.BookingDate.Format(domain.DateFormat)))
	uc.mailer.SendBookingConfirmation(ctx, mailer.BookingConfirmation{
		UserID:    result.CustomerID,
		Reference: result.Reference,
		Date:      result.BookingDate.Format(domain.DateFormat),
		StartTime: result.SlotStartTime.Format(domain.TimeFormat),
		EndTime:   result.SlotEndTime.Format(domain.TimeFormat),
	})

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		Reference:     b.Reference,
		CustomerID:    b.CustomerID,
		PetID:         b.PetID,
		ServiceTypeID: b.ServiceTypeID,
		SubServiceID:  b.SubServiceID,
		GroomerID:     b.GroomerID,
		TimeSlotID:    b.TimeSlotID,
		BookingDate:   b.BookingDate,
		SlotStartTime: b.SlotStartTime,
		SlotEndTime:   b.SlotEndTime,
		Status:        string(b.Status),
		Price:         b.Price,
		Notes:         b.Notes,
		PetWeight:     b.PetWeight,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
