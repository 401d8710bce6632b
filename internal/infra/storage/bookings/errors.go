package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrLoadState возвращается при ошибке загрузки коллекции из хранилища
	ErrLoadState = errors.New("bookings.repository: failed to load state")

	// ErrSaveState возвращается при ошибке сохранения коллекции в хранилище
	ErrSaveState = errors.New("bookings.repository: failed to save state")

	// ErrDecodeState возвращается при ошибке декодирования сохраненной коллекции
	ErrDecodeState = errors.New("bookings.repository: failed to decode state")
)
