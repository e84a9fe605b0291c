package confirm_timeslot

import (
	"github.com/petfit/booking-service/internal/domain"
	confirmTimeslot "github.com/petfit/booking-service/internal/usecase/confirm_timeslot"
)

// ConfirmTimeSlotRequest HTTP request model.
// GroomerID указывается явно, когда слот создан без привязки к грумеру.
type ConfirmTimeSlotRequest struct {
	GroomerID *int64 `json:"groomerId,omitempty"`
}

// TimeSlotResponse HTTP response model
type TimeSlotResponse struct {
	TimeSlotID  int64  `json:"timeslotId"`
	GroomerID   int64  `json:"groomerId"`
	CustomerID  int64  `json:"customerId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsBooked    bool   `json:"isBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmTimeslot.Response) *TimeSlotResponse {
	return &TimeSlotResponse{
		TimeSlotID:  resp.TimeSlotID,
		GroomerID:   resp.GroomerID,
		CustomerID:  resp.CustomerID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.Format(domain.TimeFormat),
		EndTime:     resp.EndTime.Format(domain.TimeFormat),
		IsBooked:    resp.IsBooked,
	}
}
