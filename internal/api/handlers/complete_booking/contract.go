package complete_booking

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type BookingsService interface {
	Complete(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
