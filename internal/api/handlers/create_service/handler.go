package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/catalog"
)

const (
	msgInvalidBody   = "Некорректное тело запроса"
	msgInvalidInput  = "Название услуги и положительная цена обязательны"
	msgInternalError = "Не удалось создать услугу"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func New(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle POST /api/v1/staff/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.Create(r.Context(), catalog.CreateRequest{
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
	case err != nil:
		h.logger.Error("create_service.Handle - создание услуги: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, handlers.NewServiceView(created))
}
