package submit_review

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	// Частичная запись при этом не создается
	ErrInvalidInput = errors.New("submit_review: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("submit_review: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_review: internal error")
)
