package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/settings"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInvalidInput  = "Название магазина обязательно"
	msgInternalError = "Не удалось сохранить настройки магазина"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func New(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/staff/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), req.Name, req.Tagline)
	switch {
	case errors.Is(err, settings.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	case err != nil:
		h.logger.Error("update_settings.Handle - обновление настроек: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewSettingsView(updated))
}
