package domain

import (
	"time"

	"github.com/petfit/booking-service/pkg/types"
)

// Subscription повторяющееся или разовое предложение (занятие/курс),
// которое могут бронировать многие клиенты.
//
// Даты: разовое занятие (IsSingleClass) имеет только StartDate,
// курс — диапазон [StartDate, EndDate] включительно.
type Subscription struct {
	ID            int64
	Name          string
	CategoryID    int64
	SessionTypeID int64
	TrainerID     int64
	LocationID    int64
	Price         float64
	MediaURL      *string
	Description   *string

	IsSingleClass bool
	StartDate     time.Time
	EndDate       *time.Time // nil для разового занятия
	StartTime     types.TimeString
	EndTime       types.TimeString

	IsActive  bool
	IsExpired bool

	CreatedBy *int64
	UpdatedBy *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Агрегаты отзывов (заполняются репозиторием через join)
	TotalReviews  int
	AverageRating float64
}

// EffectiveEnd возвращает дату, после которой подписка считается истёкшей:
// последняя дата диапазона или единственная дата разового занятия
func (s *Subscription) EffectiveEnd() time.Time {
	if s.EndDate != nil {
		return *s.EndDate
	}
	return s.StartDate
}

// IsExpiredAt возвращает true, если подписка истекла на момент now
func (s *Subscription) IsExpiredAt(now time.Time) bool {
	return s.EffectiveEnd().Before(now)
}

// SubscriptionBookingStatus статус бронирования подписки
type SubscriptionBookingStatus string

const (
	SubscriptionBookingActive    SubscriptionBookingStatus = "active"
	SubscriptionBookingCancelled SubscriptionBookingStatus = "cancelled"
)

// SubscriptionBooking бронирование подписки клиентом.
// Пара (customer, subscription) уникальна: клиент не может
// забронировать одну подписку дважды.
type SubscriptionBooking struct {
	ID             int64
	SubscriptionID int64
	CustomerID     int64
	Status         SubscriptionBookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Заполняется репозиторием при выборке с данными подписки
	Subscription *Subscription
}

// IsCancelled возвращает true, если бронирование отменено
func (b *SubscriptionBooking) IsCancelled() bool {
	return b.Status == SubscriptionBookingCancelled
}

// SubscriptionFilter фильтр для выборки подписок
type SubscriptionFilter struct {
	IsExpired      *bool
	IsSingleClass  *bool
	MinPrice       *float64
	MaxPrice       *float64
	CategoryIDs    []int64
	SessionTypeIDs []int64
	TrainerIDs     []int64
	LocationIDs    []int64

	SortBy string // "price" | "rating" | "relevance"
	Order  string // "asc" | "desc"
	Page   int
	Limit  int
}

// DateWindow окно дат для поиска подписок: одна дата или диапазон [From, To]
type DateWindow struct {
	From time.Time
	To   time.Time
}

// SubscriptionSort допустимые значения сортировки
const (
	SortByPrice     = "price"
	SortByRating    = "rating"
	SortByRelevance = "relevance"
)
