package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/ptr"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Результат не кэшируется: вычисляется заново при каждом запросе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все записи на дату, включая отмененные
	// Отмененные записи нужны генератору, чтобы корректно освобождать слоты
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:            ptr.Ptr(req.Date),
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Генерируем слоты рабочего дня
	slots := generateTimeSlots(req.Date, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s", len(slots), req.Date)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}
