package domain

import (
	"time"

	"github.com/m04kA/BarberBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid проверяет, что статус является одним из допустимых
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Booking represents a scheduled or past appointment
type Booking struct {
	ID        string
	ServiceID string

	// Denormalized data for history: название услуги фиксируется на момент записи,
	// чтобы история оставалась читаемой после переименования или удаления услуги
	ServiceName string

	CustomerName  string
	CustomerPhone string // Опционально, свободный текст

	Date string           // Дата записи (YYYY-MM-DD)
	Time types.TimeString // Время начала, сетка 30 минут

	Status BookingStatus

	// ConfirmationMessage сгенерированное подтверждение (AI или fallback)
	ConfirmationMessage *string

	// Review отзыв клиента; жизненный цикл привязан к записи, после создания неизменяем
	Review *Review

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// BlocksSlot returns true if the booking makes its (date, time) slot unavailable
// Слот блокируют все записи, кроме отмененных
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can be completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// HasReview returns true if the booking carries a review
func (b *Booking) HasReview() bool {
	return b.Review != nil
}

// Review отзыв клиента, встроен в Booking
// Собственной идентичности не имеет; после прикрепления не редактируется и не удаляется
type Review struct {
	Rating  int    // Оценка от 1 до 5
	Comment string // Свободный текст, опционально
	Date    string // Дата отзыва (YYYY-MM-DD)
}

// BookingsFilter фильтр для выборки записей
type BookingsFilter struct {
	Date            *string        // Фильтр по дате (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные записи
}

// BookingUpdate изменяемые персоналом поля записи
// Полная замена изменяемых полей, остальные поля записи не затрагиваются
type BookingUpdate struct {
	CustomerName string
	Date         string
	Time         types.TimeString
	Status       BookingStatus
}
