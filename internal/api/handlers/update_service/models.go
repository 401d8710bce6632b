package update_service

// Request частичное обновление услуги, отсутствующие поля не затрагиваются
type Request struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration"`
	Image           *string  `json:"image"`
}
