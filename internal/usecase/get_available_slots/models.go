package get_available_slots

import "github.com/m04kA/BarberBookingService/internal/domain"

// Request модель запроса на получение слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком слотов на день
type Response struct {
	Date  string            // Дата, на которую запрашивались слоты
	Slots []domain.TimeSlot // Все слоты рабочего дня в хронологическом порядке
}
