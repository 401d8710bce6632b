package get_reviews

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type BookingsService interface {
	Reviews(ctx context.Context) ([]*domain.Booking, error)
	AverageRating(ctx context.Context) (float64, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
