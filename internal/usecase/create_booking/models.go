package create_booking

import (
	"time"

	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     string           // ID услуги (обязательно)
	Date          string           // Дата записи YYYY-MM-DD (обязательно)
	Time          types.TimeString // Время начала, сетка 30 минут (обязательно)
	CustomerName  string           // Имя клиента (обязательно)
	CustomerPhone string           // Телефон клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string           // ID созданной записи
	ServiceID string           // ID услуги
	Date      string           // Дата записи
	Time      types.TimeString // Время начала
	Status    string           // Статус записи (всегда confirmed)

	// Денормализованные данные
	ServiceName   string // Название услуги на момент записи
	CustomerName  string // Имя клиента
	CustomerPhone string // Телефон клиента

	// ConfirmationMessage подтверждение для показа клиенту (AI или fallback)
	ConfirmationMessage string

	CreatedAt time.Time // Время создания
}
