package models

import (
	"time"

	"github.com/petfit/booking-service/internal/domain"
	"github.com/petfit/booking-service/pkg/types"
)

// CreateSubscriptionRequest запрос на создание подписки
type CreateSubscriptionRequest struct {
	Name          string           `json:"name"`
	CategoryID    int64            `json:"categoryId"`
	SessionTypeID int64            `json:"sessionTypeId"`
	TrainerID     int64            `json:"trainerId"`
	LocationID    int64            `json:"locationId"`
	Price         float64          `json:"price"`
	MediaURL      *string          `json:"mediaUrl,omitempty"`
	Description   *string          `json:"description,omitempty"`
	IsSingleClass bool             `json:"isSingleClass"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       *time.Time       `json:"endDate,omitempty"` // обязателен для курса, запрещён для разового занятия
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	CreatedBy     *int64           `json:"-"`
}

// UpdateSubscriptionRequest запрос на обновление подписки
type UpdateSubscriptionRequest struct {
	ID            int64            `json:"-"`
	Name          string           `json:"name"`
	CategoryID    int64            `json:"categoryId"`
	SessionTypeID int64            `json:"sessionTypeId"`
	TrainerID     int64            `json:"trainerId"`
	LocationID    int64            `json:"locationId"`
	Price         float64          `json:"price"`
	MediaURL      *string          `json:"mediaUrl,omitempty"`
	Description   *string          `json:"description,omitempty"`
	IsSingleClass bool             `json:"isSingleClass"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       *time.Time       `json:"endDate,omitempty"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	IsActive      bool             `json:"isActive"`
	UpdatedBy     *int64           `json:"-"`
}

// FilterRequest запрос на выборку подписок с фильтрами
type FilterRequest struct {
	IsExpired      *bool    `json:"isExpired,omitempty"`
	IsSingleClass  *bool    `json:"isSingleClass,omitempty"`
	MinPrice       *float64 `json:"minPrice,omitempty"`
	MaxPrice       *float64 `json:"maxPrice,omitempty"`
	CategoryIDs    []int64  `json:"categoryIds,omitempty"`
	SessionTypeIDs []int64  `json:"sessionTypeIds,omitempty"`
	TrainerIDs     []int64  `json:"trainerIds,omitempty"`
	LocationIDs    []int64  `json:"locationIds,omitempty"`
	SortBy         string   `json:"sortBy,omitempty"`
	Order          string   `json:"order,omitempty"`
	Page           int      `json:"page,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *FilterRequest) ToDomainFilter() domain.SubscriptionFilter {
	return domain.SubscriptionFilter{
		IsExpired:      r.IsExpired,
		IsSingleClass:  r.IsSingleClass,
		MinPrice:       r.MinPrice,
		MaxPrice:       r.MaxPrice,
		CategoryIDs:    r.CategoryIDs,
		SessionTypeIDs: r.SessionTypeIDs,
		TrainerIDs:     r.TrainerIDs,
		LocationIDs:    r.LocationIDs,
		SortBy:         r.SortBy,
		Order:          r.Order,
		Page:           r.Page,
		Limit:          r.Limit,
	}
}

// NearbyRequest запрос гео-поиска подписок
type NearbyRequest struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	RadiusMiles *float64 `json:"radiusMiles,omitempty"` // по умолчанию domain.DefaultNearbyRadiusMiles
}

// SubscriptionResponse ответ с данными подписки
type SubscriptionResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	CategoryID    int64   `json:"categoryId"`
	SessionTypeID int64   `json:"sessionTypeId"`
	TrainerID     int64   `json:"trainerId"`
	LocationID    int64   `json:"locationId"`
	Price         float64 `json:"price"`
	MediaURL      *string `json:"mediaUrl,omitempty"`
	Description   *string `json:"description,omitempty"`
	IsSingleClass bool    `json:"isSingleClass"`
	StartDate     string  `json:"startDate"` // "2026-10-15"
	EndDate       *string `json:"endDate,omitempty"`
	StartTime     string  `json:"startTime"` // "10:00"
	EndTime       string  `json:"endTime"`
	IsActive      bool    `json:"isActive"`
	IsExpired     bool    `json:"isExpired"`
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriptionListResponse ответ со списком подписок
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page,omitempty"`
	Limit         int                    `json:"limit,omitempty"`
}

// FromDomainSubscription конвертирует domain.Subscription в response модель
func FromDomainSubscription(s *domain.Subscription) *SubscriptionResponse {
	resp := &SubscriptionResponse{
		ID:            s.ID,
		Name:          s.Name,
		CategoryID:    s.CategoryID,
		SessionTypeID: s.SessionTypeID,
		TrainerID:     s.TrainerID,
		LocationID:    s.LocationID,
		Price:         s.Price,
		MediaURL:      s.MediaURL,
		Description:   s.Description,
		IsSingleClass: s.IsSingleClass,
		StartDate:     s.StartDate.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		EndTime:       s.EndTime.String(),
		IsActive:      s.IsActive,
		IsExpired:     s.IsExpired,
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}

	if s.EndDate != nil {
		end := s.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}

	return resp
}

// FromDomainSubscriptionList конвертирует список подписок
func FromDomainSubscriptionList(subscriptions []*domain.Subscription, total int64) *SubscriptionListResponse {
	result := make([]SubscriptionResponse, 0, len(subscriptions))
	for _, s := range subscriptions {
		result = append(result, *FromDomainSubscription(s))
	}
	return &SubscriptionListResponse{Subscriptions: result, Total: total}
}
