package cancel_booking

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type BookingsService interface {
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
