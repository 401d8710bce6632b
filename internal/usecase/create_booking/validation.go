package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Отсутствие любого обязательного поля блокирует операцию без частичной записи
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	// Время должно попадать в рабочую сетку: окно 09:00-18:00, шаг 30 минут
	if err := validateSlotTime(req.Time); err != nil {
		return err
	}

	return nil
}

// validateSlotTime проверяет, что время лежит на сетке слотов рабочего дня
func validateSlotTime(t types.TimeString) error {
	minutes, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if minutes < domain.OpenHour*60 || minutes >= domain.CloseHour*60 {
		return fmt.Errorf("%w: time %s is outside business hours", ErrInvalidTimeSlot, t)
	}
	if minutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: time %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, t, domain.SlotDurationMinutes)
	}

	return nil
}
