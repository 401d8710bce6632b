package get_services

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

const msgInternalError = "Не удалось получить каталог услуг"

type Handler struct {
	service CatalogService
	logger  Logger
}

func New(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("get_services.Handle - получение каталога: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceViews(items))
}
