package complete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/bookings"
)

const (
	msgNotFound      = "Запись не найдена"
	msgInvalidChange = "Отмененную запись нельзя завершить"
	msgInternalError = "Не удалось завершить запись"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PATCH /api/v1/staff/bookings/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	completed, err := h.service.Complete(r.Context(), id)
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)
		return
	case errors.Is(err, bookings.ErrInvalidStatusChange):
		handlers.RespondConflict(w, msgInvalidChange)
		return
	case err != nil:
		h.logger.Error("complete_booking.Handle - завершение записи %s: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(completed))
}
