package create_booking

import (
	"context"

	uc "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
)

type UseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
