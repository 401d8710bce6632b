package bookings

// UpdateRequest полная замена изменяемых персоналом полей записи
type UpdateRequest struct {
	CustomerName string
	Date         string
	Time         string
	Status       string
}
