package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Append(ctx context.Context, booking *domain.Booking) error
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (domain.ShopSettings, error)
}

// TextGenerator интерфейс адаптера генерации текста
// Контракт: всегда возвращает пригодную строку, никогда не падает -
// создание записи не зависит от доступности генерации
type TextGenerator interface {
	ConfirmBooking(ctx context.Context, booking *domain.Booking, shopName string) string
}

// BookingCounter интерфейс для учета созданных записей в метриках
type BookingCounter interface {
	IncBookingCreated()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
