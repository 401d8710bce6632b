package get_available_slots

import (
	"context"

	uc "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
)

type UseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
