package settings

import (
	"context"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (domain.ShopSettings, error)
	Update(ctx context.Context, name, tagline string) (domain.ShopSettings, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
