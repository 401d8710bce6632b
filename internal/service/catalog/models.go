package catalog

// CreateRequest данные для создания услуги
type CreateRequest struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Image           string
}

// UpdateRequest частичное обновление услуги, nil-поля не затрагиваются
type UpdateRequest struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Image           *string
}
