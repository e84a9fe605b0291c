package confirm_timeslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
	slotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
)

// UseCase use case подтверждения временного слота
type UseCase struct {
	slotRepo      TimeSlotRepository
	bookingRepo   BookingRepository
	orderLineRepo OrderLineRepository
	holidayRepo   HolidayRepository
	notifier      Notifier
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	bookingRepo BookingRepository,
	orderLineRepo OrderLineRepository,
	holidayRepo HolidayRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:      slotRepo,
		bookingRepo:   bookingRepo,
		orderLineRepo: orderLineRepo,
		holidayRepo:   holidayRepo,
		notifier:      notifier,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет подтверждение слота.
// Назначение клиента, грумера и флага is_booked выполняется одним
// условным UPDATE: читатель никогда не увидит занятый слот без клиента,
// а проигравший гонку запрос получит ErrAlreadyBooked.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmTimeslot: slot=%d, customer=%d", req.TimeSlotID, req.CustomerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmTimeslot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот
	slot, err := uc.slotRepo.GetByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("ConfirmTimeslot: slot id=%d not found", req.TimeSlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("ConfirmTimeslot: failed to get slot id=%d: %v", req.TimeSlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	if slot.IsBooked {
		uc.logger.Warn("ConfirmTimeslot: slot id=%d already booked", req.TimeSlotID)
		return nil, ErrAlreadyBooked
	}

	// 3. Разрешаем эффективного грумера. Если грумер передан явно
	// и не совпадает с назначенным слоту, отклоняем запрос вместо
	// молчаливого предпочтения одного из двух.
	groomerID, err := resolveGroomer(slot, req.GroomerID)
	if err != nil {
		uc.logger.Warn("ConfirmTimeslot: groomer resolution failed: %v", err)
		return nil, err
	}

	candidate := domain.Commitment{
		GroomerID: groomerID,
		Interval:  slot.Interval(),
		Source:    domain.SourceTimeSlot,
	}

	// 4. Сканы и условный UPDATE в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блэкаут: персональный или офисный, покрывающий начало слота
		blocking, err := uc.holidayRepo.FindBlocking(txCtx, groomerID, slot.StartTime)
		if err != nil {
			uc.logger.Error("ConfirmTimeslot: failed to check holidays: %v", err)
			return fmt.Errorf("%w: failed to check holidays: %v", ErrInternal, err)
		}
		if blocking != nil {
			uc.logger.Warn("ConfirmTimeslot: slot blocked by holiday id=%d", blocking.ID)
			return ErrHoliday
		}

		// 4.2. Обязательства грумера из всех источников: занятые слоты
		// (кроме подтверждаемого), бронирования, строки старых заказов
		commitments, err := uc.slotRepo.BookedCommitmentsFor(txCtx, groomerID, slot.BookingDate, slot.ID)
		if err != nil {
			uc.logger.Error("ConfirmTimeslot: failed to get slot commitments: %v", err)
			return fmt.Errorf("%w: failed to get slot commitments: %v", ErrInternal, err)
		}

		bookingCommitments, err := uc.bookingRepo.CommitmentsForDate(txCtx, groomerID, slot.BookingDate, nil)
		if err != nil {
			uc.logger.Error("ConfirmTimeslot: failed to get booking commitments: %v", err)
			return fmt.Errorf("%w: failed to get booking commitments: %v", ErrInternal, err)
		}
		commitments = append(commitments, bookingCommitments...)

		orderCommitments, err := uc.orderLineRepo.CommitmentsForDate(txCtx, groomerID, slot.BookingDate)
		if err != nil {
			uc.logger.Error("ConfirmTimeslot: failed to get order line commitments: %v", err)
			return fmt.Errorf("%w: failed to get order line commitments: %v", ErrInternal, err)
		}
		commitments = append(commitments, orderCommitments...)

		// 4.3. Интервальная проверка пересечения
		if conflict := domain.FindConflict(candidate, commitments); conflict != nil {
			uc.logger.Warn("ConfirmTimeslot: conflict with %s at %s",
				conflict.Source, conflict.Interval)
			return ErrConflict
		}

		// 4.4. Атомарное подтверждение: UPDATE с условием is_booked = false
		if err := uc.slotRepo.ConfirmIfFree(txCtx, slot.ID, req.CustomerID, groomerID); err != nil {
			if errors.Is(err, slotRepo.ErrAlreadyBooked) {
				uc.logger.Warn("ConfirmTimeslot: slot id=%d lost the race", slot.ID)
				return ErrAlreadyBooked
			}
			uc.logger.Error("ConfirmTimeslot: failed to confirm slot: %v", err)
			return fmt.Errorf("%w: failed to confirm slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmTimeslot: successfully confirmed slot id=%d for customer=%d",
		slot.ID, req.CustomerID)

	// 5. Уведомления после коммита: их ошибки не откатывают подтверждение
	uc.notifier.SendToCustomer(ctx, req.CustomerID, "Slot confirmed",
		fmt.Sprintf("Your slot on %s at %s is confirmed",
			slot.BookingDate.Format(domain.DateFormat), slot.StartTime.Format(domain.TimeFormat)))
	uc.notifier.SendToGroomer(ctx, groomerID, "Slot booked",
		fmt.Sprintf("Slot on %s at %s was booked",
			slot.BookingDate.Format(domain.DateFormat), slot.StartTime.Format(domain.TimeFormat)))

	return &Response{
		TimeSlotID:  slot.ID,
		GroomerID:   groomerID,
		CustomerID:  req.CustomerID,
		BookingDate: slot.BookingDate,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		IsBooked:    true,
	}, nil
}

// resolveGroomer выбирает эффективного грумера для подтверждения.
// Явный грумер обязан совпадать с назначенным слоту, если назначены оба.
func resolveGroomer(slot *domain.TimeSlot, explicit *int64) (int64, error) {
	if explicit == nil {
		return slot.GroomerID, nil
	}

	if slot.GroomerID != 0 && slot.GroomerID != *explicit {
		return 0, ErrGroomerMismatch
	}

	return *explicit, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.GroomerID != nil && *req.GroomerID <= 0 {
		return fmt.Errorf("%w: groomerID must be positive", ErrInvalidInput)
	}

	return nil
}
