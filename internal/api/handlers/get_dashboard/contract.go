package get_dashboard

import (
	"context"

	uc "github.com/m04kA/BarberBookingService/internal/usecase/get_dashboard"
)

type UseCase interface {
	Execute(ctx context.Context) (*uc.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
