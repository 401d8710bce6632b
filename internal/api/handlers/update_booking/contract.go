package update_booking

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/internal/service/bookings"
)

type BookingsService interface {
	Update(ctx context.Context, id string, req bookings.UpdateRequest) (*domain.Booking, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
