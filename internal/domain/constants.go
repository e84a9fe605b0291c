package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MinRating            = 1
	MaxRating            = 5
)

// DefaultNearbyRadiusMiles радиус гео-поиска подписок по умолчанию
const DefaultNearbyRadiusMiles = 5.0

// MetersPerMile коэффициент перевода миль в метры
const MetersPerMile = 1609.34

// ValidBookingStatuses список допустимых статусов ручного бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ValidSubscriptionBookingStatuses список допустимых статусов бронирования подписки
var ValidSubscriptionBookingStatuses = []SubscriptionBookingStatus{
	SubscriptionBookingActive,
	SubscriptionBookingCancelled,
}
