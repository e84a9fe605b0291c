package models

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
)

// CategoryRequest запрос на создание/обновление категории
type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SessionTypeRequest запрос на создание/обновление типа занятия
type SessionTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// SessionTypeResponse ответ с данными типа занятия
type SessionTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LocationRequest запрос на создание/обновление адресной записи
type LocationRequest struct {
	StreetName string  `json:"streetName"`
	Landmark   *string `json:"landmark,omitempty"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// LocationResponse ответ с данными адресной записи
type LocationResponse struct {
	ID         int64     `json:"id"`
	StreetName string    `json:"streetName"`
	Landmark   *string   `json:"landmark,omitempty"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TaxRateRequest запрос на создание/обновление налоговой ставки
type TaxRateRequest struct {
	Name     string  `json:"name"`
	Percent  float64 `json:"percent"`
	IsActive bool    `json:"isActive"`
}

// TaxRateResponse ответ с данными налоговой ставки
type TaxRateResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Percent   float64   `json:"percent"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HolidayRequest запрос на создание/обновление блэкаут-периода.
// GroomerID == nil означает блэкаут на весь салон.
type HolidayRequest struct {
	GroomerID *int64    `json:"groomerId,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
}

// HolidayResponse ответ с данными блэкаут-периода
type HolidayResponse struct {
	ID        int64     `json:"id"`
	GroomerID *int64    `json:"groomerId,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainCategory конвертирует domain.Category в response модель
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainSessionType конвертирует domain.SessionType в response модель
func FromDomainSessionType(st *domain.SessionType) *SessionTypeResponse {
	return &SessionTypeResponse{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

// FromDomainLocation конвертирует domain.Location в response модель
func FromDomainLocation(l *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:         l.ID,
		StreetName: l.StreetName,
		Landmark:   l.Landmark,
		City:       l.City,
		Country:    l.Country,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

// FromDomainTaxRate конвертирует domain.TaxRate в response модель
func FromDomainTaxRate(t *domain.TaxRate) *TaxRateResponse {
	return &TaxRateResponse{
		ID:        t.ID,
		Name:      t.Name,
		Percent:   t.Percent,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainHoliday конвертирует domain.Holiday в response модель
func FromDomainHoliday(h *domain.Holiday) *HolidayResponse {
	return &HolidayResponse{
		ID:        h.ID,
		GroomerID: h.GroomerID,
		StartDate: h.StartDate.Format(domain.DateFormat),
		EndDate:   h.EndDate.Format(domain.DateFormat),
		Reason:    h.Reason,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
