package create_manual_booking

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	createManualBooking "github.com/petfit/booking-service/internal/usecase/create_manual_booking"
)

// CreateManualBookingRequest HTTP request model
type CreateManualBookingRequest struct {
	CustomerID    int64    `json:"customerId"`
	PetID         *int64   `json:"petId,omitempty"`
	ServiceTypeID *int64   `json:"serviceTypeId,omitempty"`
	SubServiceID  *int64   `json:"subServiceId,omitempty"`
	GroomerID     int64    `json:"groomerId"`
	TimeSlotID    int64    `json:"timeslotId"`
	BookingDate   string   `json:"bookingDate"` // "2026-10-15"
	Status        *string  `json:"status,omitempty"`
	Price         float64  `json:"price"`
	Notes         *string  `json:"notes,omitempty"`
	PetWeight     *float64 `json:"petWeight,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64    `json:"id"`
	Reference     string   `json:"reference"`
	CustomerID    int64    `json:"customerId"`
	PetID         *int64   `json:"petId,omitempty"`
	ServiceTypeID *int64   `json:"serviceTypeId,omitempty"`
	SubServiceID  *int64   `json:"subServiceId,omitempty"`
	GroomerID     int64    `json:"groomerId"`
	TimeSlotID    int64    `json:"timeslotId"`
	BookingDate   string   `json:"bookingDate"`
	SlotStartTime string   `json:"slotStartTime"`
	SlotEndTime   string   `json:"slotEndTime"`
	Status        string   `json:"status"`
	Price         float64  `json:"price"`
	Notes         *string  `json:"notes,omitempty"`
	PetWeight     *float64 `json:"petWeight,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateManualBookingRequest) ToUseCaseRequest() (*createManualBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createManualBooking.Request{
		CustomerID:    r.CustomerID,
		PetID:         r.PetID,
		ServiceTypeID: r.ServiceTypeID,
		SubServiceID:  r.SubServiceID,
		GroomerID:     r.GroomerID,
		TimeSlotID:    r.TimeSlotID,
		Date:          bookingDate,
		Status:        r.Status,
		Price:         r.Price,
		Notes:         r.Notes,
		PetWeight:     r.PetWeight,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createManualBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		CustomerID:    resp.CustomerID,
		PetID:         resp.PetID,
		ServiceTypeID: resp.ServiceTypeID,
		SubServiceID:  resp.SubServiceID,
		GroomerID:     resp.GroomerID,
		TimeSlotID:    resp.TimeSlotID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		SlotStartTime: resp.SlotStartTime.Format(domain.TimeFormat),
		SlotEndTime:   resp.SlotEndTime.Format(domain.TimeFormat),
		Status:        resp.Status,
		Price:         resp.Price,
		Notes:         resp.Notes,
		PetWeight:     resp.PetWeight,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
