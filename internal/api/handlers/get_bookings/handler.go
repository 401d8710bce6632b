package get_bookings

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/domain"
)

const (
	msgInvalidStatus = "Недопустимый статус"
	msgInternalError = "Не удалось получить записи"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/staff/bookings?date=YYYY-MM-DD&status=confirmed
// Параметр history=true возвращает завершенные записи, новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("history") == "true" {
		items, err := h.service.History(r.Context())
		if err != nil {
			h.logger.Error("get_bookings.Handle - получение истории: %v", err)
			handlers.RespondInternalError(w, msgInternalError)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingViews(items))
		return
	}

	var filter domain.BookingsFilter
	if date := query.Get("date"); date != "" {
		filter.Date = &date
	}
	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.IsValid() {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("get_bookings.Handle - получение записей: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingViews(items))
}
