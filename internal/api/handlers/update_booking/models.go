package update_booking

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	updateManualBooking "github.com/petfit/booking-service/internal/usecase/update_manual_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	GroomerID    int64  `json:"groomerId"`
	TimeSlotID   int64  `json:"timeslotId"`
	BookingDate  string `json:"bookingDate"` // "2026-10-15"
	SubServiceID *int64 `json:"subServiceId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	CustomerID    int64   `json:"customerId"`
	GroomerID     int64   `json:"groomerId"`
	TimeSlotID    int64   `json:"timeslotId"`
	SubServiceID  *int64  `json:"subServiceId,omitempty"`
	BookingDate   string  `json:"bookingDate"`
	SlotStartTime string  `json:"slotStartTime"`
	SlotEndTime   string  `json:"slotEndTime"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateManualBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &updateManualBooking.Request{
		BookingID:    bookingID,
		GroomerID:    r.GroomerID,
		TimeSlotID:   r.TimeSlotID,
		Date:         bookingDate,
		SubServiceID: r.SubServiceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateManualBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		CustomerID:    resp.CustomerID,
		GroomerID:     resp.GroomerID,
		TimeSlotID:    resp.TimeSlotID,
		SubServiceID:  resp.SubServiceID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		SlotStartTime: resp.SlotStartTime.Format(domain.TimeFormat),
		SlotEndTime:   resp.SlotEndTime.Format(domain.TimeFormat),
		Status:        resp.Status,
		Price:         resp.Price,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
