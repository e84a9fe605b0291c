package get_available_timeslots

import (
	"context"
	"fmt"

	"github.com/petfit/booking-service/internal/domain"
)

// UseCase use case получения свободных слотов грумера на дату
type UseCase struct {
	slotRepo    TimeSlotRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo TimeSlotRepository, holidayRepo HolidayRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Execute возвращает свободные слоты грумера на дату.
// Слоты, накрытые блэкаутом (персональным или офисным), скрываются:
// их всё равно нельзя подтвердить.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimeslots: groomer=%d, date=%s",
		req.GroomerID, req.Date.Format(domain.DateFormat))

	if req.GroomerID <= 0 {
		return nil, fmt.Errorf("%w: groomerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slots, err := uc.slotRepo.ListFree(ctx, req.GroomerID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableTimeslots: failed to list free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list free slots: %v", ErrInternal, err)
	}

	available := make([]Slot, 0, len(slots))
	for _, s := range slots {
		blocking, err := uc.holidayRepo.FindBlocking(ctx, req.GroomerID, s.StartTime)
		if err != nil {
			uc.logger.Error("GetAvailableTimeslots: failed to check holidays: %v", err)
			return nil, fmt.Errorf("%w: failed to check holidays: %v", ErrInternal, err)
		}
		if blocking != nil {
			continue
		}
		available = append(available, Slot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	uc.logger.Info("GetAvailableTimeslots: %d of %d slots available", len(available), len(slots))

	return &Response{
		GroomerID: req.GroomerID,
		Date:      req.Date,
		Slots:     available,
	}, nil
}
