package update_settings

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type SettingsService interface {
	Update(ctx context.Context, name, tagline string) (domain.ShopSettings, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
