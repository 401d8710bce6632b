package update_service

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/service/catalog"
)

type CatalogService interface {
	Update(ctx context.Context, id string, req catalog.UpdateRequest) (*domain.Service, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
