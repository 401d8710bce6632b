package domain

import "github.com/m04kA/BarberBookingService/pkg/types"

// TimeSlot represents a candidate (time, availability) pair for a chosen date
// Вычисляется на лету, не хранится
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}
