package subscriptions

import (
	"fmt"
	"time"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/types"
)

// validateCommonFields валидирует поля, общие для создания и обновления
func validateCommonFields(name string, categoryID, sessionTypeID, trainerID, locationID int64, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if categoryID <= 0 {
		return fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}
	if sessionTypeID <= 0 {
		return fmt.Errorf("%w: sessionTypeID must be positive", ErrInvalidInput)
	}
	if trainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}
	if locationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

// validateDatesAndTimes проверяет даты и время подписки:
//   - разовое занятие несёт одну дату, курс — диапазон;
//   - каждая дата в будущем: строго позже сегодняшнего дня, либо сегодня,
//     но startTime ещё впереди по настенным часам;
//   - конец диапазона не раньше начала;
//   - endTime строго позже startTime (ночные занятия не поддерживаются).
func validateDatesAndTimes(startDate time.Time, endDate *time.Time, startTime, endTime types.TimeString, isSingleClass bool, now time.Time) error {
	if startDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if isSingleClass && endDate != nil {
		return ErrDateArity
	}
	if !isSingleClass && endDate == nil {
		return ErrDateArity
	}

	if startTime.IsZero() || endTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := endTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !endTime.IsAfter(startTime) {
		return ErrTimeRangeInverted
	}

	if err := validateFutureDate(startDate, startTime, now); err != nil {
		return err
	}

	if endDate != nil {
		if endDate.Before(truncateToDay(startDate)) {
			return ErrDateRangeInverted
		}
		if err := validateFutureDate(*endDate, startTime, now); err != nil {
			return err
		}
	}

	return nil
}

// validateFutureDate проверяет, что дата в будущем. Сегодняшняя дата
// допустима, пока startTime ещё впереди по настенным часам.
func validateFutureDate(date time.Time, startTime types.TimeString, now time.Time) error {
	day := truncateToDay(date)
	today := truncateToDay(now)

	if day.After(today) {
		return nil
	}

	if day.Equal(today) {
		startAt, err := startTime.On(now)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if startAt.After(now) {
			return nil
		}
	}

	return ErrDateInPast
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
