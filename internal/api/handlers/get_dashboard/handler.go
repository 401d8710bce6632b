package get_dashboard

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

const msgInternalError = "Не удалось собрать сводку дня"

// Response сводка дня для персонала
type Response struct {
	ShopName      string                 `json:"shopName"`
	Tagline       string                 `json:"tagline"`
	Summary       string                 `json:"summary"`
	TodayBookings []handlers.BookingView `json:"todayBookings"`
	TotalRevenue  float64                `json:"totalRevenue"`
	ReviewCount   int                    `json:"reviewCount"`
	AverageRating float64                `json:"averageRating"`
}

type Handler struct {
	usecase UseCase
	logger  Logger
}

func New(usecase UseCase, logger Logger) *Handler {
	return &Handler{usecase: usecase, logger: logger}
}

// Handle GET /api/v1/staff/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.usecase.Execute(r.Context())
	if err != nil {
		h.logger.Error("get_dashboard.Handle - сборка сводки: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		ShopName:      resp.ShopName,
		Tagline:       resp.Tagline,
		Summary:       resp.Summary,
		TodayBookings: handlers.NewBookingViews(resp.TodayBookings),
		TotalRevenue:  resp.TotalRevenue,
		ReviewCount:   resp.ReviewCount,
		AverageRating: resp.AverageRating,
	})
}
