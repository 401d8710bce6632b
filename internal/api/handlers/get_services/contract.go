package get_services

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
