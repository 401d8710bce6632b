package handlers

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Модели ответов совместимы с форматом данных исходного SPA: camelCase-поля,
// отзыв встроен в запись, поле aiConfirmationMessage опционально

type ReviewView struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type BookingView struct {
	ID                  string      `json:"id"`
	ServiceID           string      `json:"serviceId"`
	ServiceName         string      `json:"serviceName"`
	CustomerName        string      `json:"customerName"`
	CustomerPhone       string      `json:"customerPhone"`
	Date                string      `json:"date"`
	Time                string      `json:"time"`
	Status              string      `json:"status"`
	ConfirmationMessage *string     `json:"aiConfirmationMessage,omitempty"`
	Review              *ReviewView `json:"review,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

type ServiceView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SettingsView struct {
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func NewBookingView(b *domain.Booking) BookingView {
	view := BookingView{
		ID:                  b.ID,
		ServiceID:           b.ServiceID,
		ServiceName:         b.ServiceName,
		CustomerName:        b.CustomerName,
		CustomerPhone:       b.CustomerPhone,
		Date:                b.Date,
		Time:                b.Time.String(),
		Status:              string(b.Status),
		ConfirmationMessage: b.ConfirmationMessage,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if b.Review != nil {
		view.Review = &ReviewView{
			Rating:  b.Review.Rating,
			Comment: b.Review.Comment,
			Date:    b.Review.Date,
		}
	}
	return view
}

func NewBookingViews(items []*domain.Booking) []BookingView {
	views := make([]BookingView, 0, len(items))
	for _, b := range items {
		views = append(views, NewBookingView(b))
	}
	return views
}

func NewServiceView(s *domain.Service) ServiceView {
	return ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Image:           s.Image,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewServiceViews(items []*domain.Service) []ServiceView {
	views := make([]ServiceView, 0, len(items))
	for _, s := range items {
		views = append(views, NewServiceView(s))
	}
	return views
}

func NewSettingsView(s domain.ShopSettings) SettingsView {
	return SettingsView{
		Name:      s.Name,
		Tagline:   s.Tagline,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewSlotViews(slots []domain.TimeSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{Time: s.Time.String(), Available: s.Available})
	}
	return views
}
