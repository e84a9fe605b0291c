package create_manual_booking

import (
	"fmt"
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.GroomerID <= 0 {
		return fmt.Errorf("%w: groomerID must be positive", ErrInvalidInput)
	}

	if req.TimeSlotID <= 0 {
		return fmt.Errorf("%w: timeSlotID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Status != nil && !isValidStatus(*req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotMatchesRequest проверяет, что слот принадлежит запрошенному
// грумеру и лежит на запрошенной дате
func validateSlotMatchesRequest(slot *domain.TimeSlot, req *Request) error {
	if slot.GroomerID != req.GroomerID {
		return fmt.Errorf("%w: slot belongs to a different groomer", ErrInvalidInput)
	}

	if !isSameDay(slot.BookingDate, req.Date) {
		return fmt.Errorf("%w: slot is on a different date", ErrInvalidInput)
	}

	return nil
}

func isValidStatus(status string) bool {
	for _, s := range domain.ValidBookingStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
