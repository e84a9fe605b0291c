package subscription_catalog

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/internal/service/subscriptions/models"
	"github.com/petfit/booking-service/pkg/types"
)

// SubscriptionRequest HTTP request model для создания и обновления подписки
type SubscriptionRequest struct {
	Name          string  `json:"name"`
	CategoryID    int64   `json:"categoryId"`
	SessionTypeID int64   `json:"sessionTypeId"`
	TrainerID     int64   `json:"trainerId"`
	LocationID    int64   `json:"locationId"`
	Price         float64 `json:"price"`
	MediaURL      *string `json:"mediaUrl,omitempty"`
	Description   *string `json:"description,omitempty"`
	IsSingleClass bool    `json:"isSingleClass"`
	StartDate     string  `json:"startDate"`         // "2026-10-15"
	EndDate       *string `json:"endDate,omitempty"` // обязателен для курса
	StartTime     string  `json:"startTime"`         // "10:00"
	EndTime       string  `json:"endTime"`
	IsActive      *bool   `json:"isActive,omitempty"` // учитывается только при обновлении
}

// DateWindowRequest HTTP request model поиска по окну дат.
// EndDate == nil означает поиск на одну дату.
type DateWindowRequest struct {
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
}

func (r *SubscriptionRequest) parseDatesAndTimes() (time.Time, *time.Time, types.TimeString, types.TimeString, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return time.Time{}, nil, "", "", err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return time.Time{}, nil, "", "", err
		}
		endDate = &parsed
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return time.Time{}, nil, "", "", err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return time.Time{}, nil, "", "", err
	}

	return startDate, endDate, startTime, endTime, nil
}

// ToCreateRequest конвертирует HTTP запрос в модель сервиса
func (r *SubscriptionRequest) ToCreateRequest(createdBy int64) (*models.CreateSubscriptionRequest, error) {
	startDate, endDate, startTime, endTime, err := r.parseDatesAndTimes()
	if err != nil {
		return nil, err
	}

	return &models.CreateSubscriptionRequest{
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		SessionTypeID: r.SessionTypeID,
		TrainerID:     r.TrainerID,
		LocationID:    r.LocationID,
		Price:         r.Price,
		MediaURL:      r.MediaURL,
		Description:   r.Description,
		IsSingleClass: r.IsSingleClass,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     startTime,
		EndTime:       endTime,
		CreatedBy:     &createdBy,
	}, nil
}

// ToUpdateRequest конвертирует HTTP запрос в модель сервиса
func (r *SubscriptionRequest) ToUpdateRequest(id, updatedBy int64) (*models.UpdateSubscriptionRequest, error) {
	startDate, endDate, startTime, endTime, err := r.parseDatesAndTimes()
	if err != nil {
		return nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &models.UpdateSubscriptionRequest{
		ID:            id,
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		SessionTypeID: r.SessionTypeID,
		TrainerID:     r.TrainerID,
		LocationID:    r.LocationID,
		Price:         r.Price,
		MediaURL:      r.MediaURL,
		Description:   r.Description,
		IsSingleClass: r.IsSingleClass,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     startTime,
		EndTime:       endTime,
		IsActive:      isActive,
		UpdatedBy:     &updatedBy,
	}, nil
}

// ToDateWindow конвертирует HTTP запрос в окно дат.
// Одиночная дата превращается в окно из одного дня.
func (r *DateWindowRequest) ToDateWindow() (domain.DateWindow, error) {
	from, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return domain.DateWindow{}, err
	}

	to := from
	if r.EndDate != nil {
		to, err = time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return domain.DateWindow{}, err
		}
	}

	return domain.DateWindow{From: from, To: to}, nil
}
