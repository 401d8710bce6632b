package submit_review

import (
	"context"

	uc "github.com/m04kA/BarberBookingService/internal/usecase/submit_review"
)

type UseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
