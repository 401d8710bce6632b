package submit_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	uc "github.com/m04kA/BarberBookingService/internal/usecase/submit_review"
)

const (
	msgInvalidBody     = "Некорректное тело запроса"
	msgInvalidInput    = "Услуга и имя клиента обязательны, оценка от 1 до 5"
	msgServiceNotFound = "Выбранная услуга не найдена"
	msgInternalError   = "Не удалось сохранить отзыв"
)

// Request тело запроса на отправку отзыва
type Request struct {
	ServiceID    string `json:"serviceId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// Response сохраненный отзыв
type Response struct {
	BookingID   string `json:"bookingId"`
	ServiceName string `json:"serviceName"`
	Rating      int    `json:"rating"`
	Date        string `json:"date"`
}

type Handler struct {
	usecase UseCase
	logger  Logger
}

func New(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &uc.Request{
		ServiceID:    req.ServiceID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	switch {
	case errors.Is(err, uc.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	case errors.Is(err, uc.ErrServiceNotFound):
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	case err != nil:
		h.logger.Error("submit_review.Handle - сохранение отзыва: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, Response{
		BookingID:   resp.BookingID,
		ServiceName: resp.ServiceName,
		Rating:      resp.Rating,
		Date:        resp.Date,
	})
}
