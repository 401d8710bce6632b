package get_bookings

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	History(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
