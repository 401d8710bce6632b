package get_settings

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (domain.ShopSettings, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
