package get_share_link

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

// Response публичная ссылка для записи клиентов
type Response struct {
	URL string `json:"url"`
}

type Handler struct {
	service SettingsService
}

func New(service SettingsService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/staff/share-link
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{URL: h.service.ShareLink(r.Context())})
}
