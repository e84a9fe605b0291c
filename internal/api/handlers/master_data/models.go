package master_data

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/internal/service/masterdata/models"
)

// HolidayRequest HTTP request model блэкаут-периода
type HolidayRequest struct {
	GroomerID *int64  `json:"groomerId,omitempty"`
	StartDate string  `json:"startDate"` // "2026-10-15"
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *HolidayRequest) ToServiceRequest() (*models.HolidayRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.HolidayRequest{
		GroomerID: r.GroomerID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    r.Reason,
	}, nil
}
