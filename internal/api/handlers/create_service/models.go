package create_service

// Request тело запроса на создание услуги
type Request struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Image           string  `json:"image"`
}
