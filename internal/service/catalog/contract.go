package catalog

import (
	"context"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Append(ctx context.Context, service *domain.Service) error
	Update(ctx context.Context, id string, upd domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
