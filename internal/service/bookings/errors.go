package bookings

import "errors"

var (
	ErrInvalidInput        = errors.New("bookings: invalid input")
	ErrBookingNotFound     = errors.New("bookings: booking not found")
	ErrInvalidStatusChange = errors.New("bookings: invalid status change")
	ErrInternal            = errors.New("bookings: internal error")
)
