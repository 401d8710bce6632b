package create_service

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/service/catalog"
)

type CatalogService interface {
	Create(ctx context.Context, req catalog.CreateRequest) (*domain.Service, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
