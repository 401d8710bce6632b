package domain

// Business hours template: рабочее окно фиксировано для всех дней
// Начало включительно, конец исключительно: последний слот начинается в 17:30
const (
	OpenHour            = 9
	CloseHour           = 18
	SlotDurationMinutes = 30
)

// SlotsPerDay количество слотов в рабочем дне
const SlotsPerDay = (CloseHour - OpenHour) * 60 / SlotDurationMinutes

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	DefaultRating = 5

	// DefaultServiceDurationMinutes длительность услуги по умолчанию при создании
	DefaultServiceDurationMinutes = 30

	// DefaultServiceImage изображение услуги по умолчанию при создании
	DefaultServiceImage = "https://images.unsplash.com/photo-1585747860715-2ba37e788b70?q=80&w=800&auto=format&fit=crop"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
