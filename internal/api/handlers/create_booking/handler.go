package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	uc "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

const (
	msgInvalidBody      = "Некорректное тело запроса"
	msgInvalidInput     = "Услуга, дата, время и имя клиента обязательны"
	msgServiceNotFound  = "Выбранная услуга не найдена"
	msgInvalidTimeSlot  = "Время должно попадать в рабочую сетку 09:00-18:00 с шагом 30 минут"
	msgSlotNotAvailable = "Выбранное время уже занято"
	msgInternalError    = "Не удалось создать запись"
)

type Handler struct {
	usecase UseCase
	logger  Logger
}

func New(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &uc.Request{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          types.TimeString(req.Time),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	switch {
	case errors.Is(err, uc.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	case errors.Is(err, uc.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	case errors.Is(err, uc.ErrInvalidTimeSlot):
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		return
	case errors.Is(err, uc.ErrSlotNotAvailable):
		handlers.RespondConflict(w, msgSlotNotAvailable)
		return
	case err != nil:
		h.logger.Error("create_booking.Handle - создание записи: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, Response{
		ID:                  resp.ID,
		ServiceID:           resp.ServiceID,
		ServiceName:         resp.ServiceName,
		CustomerName:        resp.CustomerName,
		CustomerPhone:       resp.CustomerPhone,
		Date:                resp.Date,
		Time:                resp.Time.String(),
		Status:              resp.Status,
		ConfirmationMessage: resp.ConfirmationMessage,
		CreatedAt:           resp.CreatedAt,
	})
}
