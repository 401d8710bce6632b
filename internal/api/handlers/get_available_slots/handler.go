package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	uc "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate   = "Параметр date обязателен и должен быть в формате YYYY-MM-DD"
	msgInternalError = "Не удалось получить расписание"
)

// Response сетка слотов на день
type Response struct {
	Date  string              `json:"date"`
	Slots []handlers.SlotView `json:"slots"`
}

type Handler struct {
	usecase UseCase
	logger  Logger
}

func New(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.usecase.Execute(r.Context(), &uc.Request{
		Date: r.URL.Query().Get("date"),
	})
	switch {
	case errors.Is(err, uc.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	case err != nil:
		h.logger.Error("get_available_slots.Handle - получение слотов: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		Date:  resp.Date,
		Slots: handlers.NewSlotViews(resp.Slots),
	})
}
