package domain

import "time"

// Category категория услуг (груминг, фитнес и т.д.)
type Category struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SessionType тип занятия (групповое, индивидуальное, онлайн и т.д.)
type SessionType struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location адресная запись: улица + город + страна + координаты
type Location struct {
	ID         int64
	StreetName string
	Landmark   *string
	City       string
	Country    string
	Latitude   float64
	Longitude  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TaxRate налоговая ставка
type TaxRate struct {
	ID        int64
	Name      string
	Percent   float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
