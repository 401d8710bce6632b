package get_settings

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

const msgInternalError = "Не удалось получить настройки магазина"

type Handler struct {
	service SettingsService
	logger  Logger
}

func New(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("get_settings.Handle - получение настроек: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewSettingsView(current))
}
