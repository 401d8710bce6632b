package catalog

import "errors"

var (
	ErrInvalidInput    = errors.New("catalog: invalid input")
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrInternal        = errors.New("catalog: internal error")
)
