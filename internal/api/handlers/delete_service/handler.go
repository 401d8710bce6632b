package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/catalog"
)

const (
	msgNotFound      = "Услуга не найдена"
	msgInternalError = "Не удалось удалить услугу"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func New(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/v1/staff/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgNotFound)
		return
	case err != nil:
		h.logger.Error("delete_service.Handle - удаление услуги %s: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
