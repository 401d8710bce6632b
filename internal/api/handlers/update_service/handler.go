package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/catalog"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInvalidInput  = "Некорректные данные услуги"
	msgNotFound      = "Услуга не найдена"
	msgInternalError = "Не удалось обновить услугу"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func New(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/staff/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, catalog.UpdateRequest{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Image:           req.Image,
	})
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	case errors.Is(err, catalog.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgNotFound)
		return
	case err != nil:
		h.logger.Error("update_service.Handle - обновление услуги %s: %v", id, err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewServiceView(updated))
}
