package get_available_slots

import (
	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// generateTimeSlots генерирует все слоты рабочего дня для указанной даты
// Чистая функция: рабочее окно фиксировано (09:00-18:00, шаг 30 минут, начало
// включительно, конец исключительно), слот недоступен тогда и только тогда,
// когда на эту дату и это время существует запись со статусом != cancelled
//
// Граничные случаи:
// - день без записей: все слоты доступны
// - отмененная запись не блокирует повторную запись на это время
// - дубликаты по времени (не должны возникать) блокируют слот независимо от количества
func generateTimeSlots(date string, bookings []*domain.Booking) []domain.TimeSlot {
	blocked := make(map[types.TimeString]bool)
	for _, b := range bookings {
		if b.Date == date && b.BlocksSlot() {
			blocked[b.Time] = true
		}
	}

	slots := make([]domain.TimeSlot, 0, domain.SlotsPerDay)
	for minutes := domain.OpenHour * 60; minutes < domain.CloseHour*60; minutes += domain.SlotDurationMinutes {
		// Границы суток здесь недостижимы, ошибка невозможна
		slotTime, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Time:      slotTime,
			Available: !blocked[slotTime],
		})
	}

	return slots
}
