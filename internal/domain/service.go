package domain

import "time"

// Service represents an offered service in the shop catalog
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           float64 // Цена в условных единицах, неотрицательная
	DurationMinutes int     // Длительность в минутах, положительная
	Image           string  // URI изображения

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceUpdate опциональные поля для частичного обновления услуги
// nil-поле означает "не менять"
type ServiceUpdate struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Image           *string
}
