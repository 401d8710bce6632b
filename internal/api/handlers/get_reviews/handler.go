package get_reviews

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

const msgInternalError = "Не удалось получить отзывы"

// Item отзыв вместе с данными записи, к которой он прикреплен
type Item struct {
	BookingID    string `json:"bookingId"`
	ServiceName  string `json:"serviceName"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}

// Response отзывы, свежие первыми, со средней оценкой
type Response struct {
	Items         []Item  `json:"items"`
	AverageRating float64 `json:"averageRating"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewed, err := h.service.Reviews(r.Context())
	if err != nil {
		h.logger.Error("get_reviews.Handle - получение отзывов: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	average, err := h.service.AverageRating(r.Context())
	if err != nil {
		h.logger.Error("get_reviews.Handle - расчет средней оценки: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	items := make([]Item, 0, len(reviewed))
	for _, b := range reviewed {
		items = append(items, Item{
			BookingID:    b.ID,
			ServiceName:  b.ServiceName,
			CustomerName: b.CustomerName,
			Rating:       b.Review.Rating,
			Comment:      b.Review.Comment,
			Date:         b.Review.Date,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Items: items, AverageRating: average})
}
