package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/bookings"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInvalidInput  = "Имя клиента, дата, время и статус обязательны"
	msgNotFound      = "Запись не найдена"
	msgInternalError = "Не удалось обновить запись"
)

// Request полная замена изменяемых полей записи
type Request struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/staff/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, bookings.UpdateRequest{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
	})
	switch {
	case errors.Is(err, bookings.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)
		return
	case err != nil:
		h.logger.Error("update_booking.Handle - обновление записи %s: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(updated))
}
