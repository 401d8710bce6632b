package settings

import "errors"

var (
	ErrInvalidInput = errors.New("settings: invalid input")
	ErrInternal     = errors.New("settings: internal error")
)
