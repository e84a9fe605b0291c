package models

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// BookingResponse ответ с данными ручного бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	Reference     string   `json:"reference"`
	CustomerID    int64    `json:"customerId"`
	PetID         *int64   `json:"petId,omitempty"`
	ServiceTypeID *int64   `json:"serviceTypeId,omitempty"`
	SubServiceID  *int64   `json:"subServiceId,omitempty"`
	GroomerID     int64    `json:"groomerId"`
	TimeSlotID    int64    `json:"timeSlotId"`
	BookingDate   string   `json:"bookingDate"` // "2026-10-15"
	SlotStartTime string   `json:"slotStartTime"`
	SlotEndTime   string   `json:"slotEndTime"`
	Status        string   `json:"status"`
	Price         float64  `json:"price"`
	Notes         *string  `json:"notes,omitempty"`
	PetWeight     *float64 `json:"petWeight,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком ручных бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		CustomerID:    b.CustomerID,
		PetID:         b.PetID,
		ServiceTypeID: b.ServiceTypeID,
		SubServiceID:  b.SubServiceID,
		GroomerID:     b.GroomerID,
		TimeSlotID:    b.TimeSlotID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		SlotStartTime: b.SlotStartTime.Format(time.RFC3339),
		SlotEndTime:   b.SlotEndTime.Format(time.RFC3339),
		Status:        string(b.Status),
		Price:         b.Price,
		Notes:         b.Notes,
		PetWeight:     b.PetWeight,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в response модель
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}

// SubscriptionSummary краткие данные подписки внутри бронирования
type SubscriptionSummary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StartDate     string  `json:"startDate"`
	EndDate       *string `json:"endDate,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	IsSingleClass bool    `json:"isSingleClass"`
	IsExpired     bool    `json:"isExpired"`
}

// SubscriptionBookingResponse ответ с данными бронирования подписки
type SubscriptionBookingResponse struct {
	ID             int64                `json:"id"`
	SubscriptionID int64                `json:"subscriptionId"`
	CustomerID     int64                `json:"customerId"`
	Status         string               `json:"status"`
	Subscription   *SubscriptionSummary `json:"subscription,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// SubscriptionBookingListResponse ответ со списком бронирований подписок
type SubscriptionBookingListResponse struct {
	Bookings []SubscriptionBookingResponse `json:"bookings"`
	Total    int                           `json:"total"`
}

// FromDomainSubscriptionBooking конвертирует domain.SubscriptionBooking в response модель
func FromDomainSubscriptionBooking(b *domain.SubscriptionBooking) *SubscriptionBookingResponse {
	resp := &SubscriptionBookingResponse{
		ID:             b.ID,
		SubscriptionID: b.SubscriptionID,
		CustomerID:     b.CustomerID,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.Subscription != nil {
		s := b.Subscription
		summary := &SubscriptionSummary{
			ID:            s.ID,
			Name:          s.Name,
			Price:         s.Price,
			StartDate:     s.StartDate.Format(domain.DateFormat),
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			IsSingleClass: s.IsSingleClass,
			IsExpired:     s.IsExpired,
		}
		if s.EndDate != nil {
			end := s.EndDate.Format(domain.DateFormat)
			summary.EndDate = &end
		}
		resp.Subscription = summary
	}

	return resp
}

// FromDomainSubscriptionBookingList конвертирует список бронирований подписок
func FromDomainSubscriptionBookingList(bookings []*domain.SubscriptionBooking) *SubscriptionBookingListResponse {
	result := make([]SubscriptionBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainSubscriptionBooking(b))
	}
	return &SubscriptionBookingListResponse{Bookings: result, Total: len(result)}
}
