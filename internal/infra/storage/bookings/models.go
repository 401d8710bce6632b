package bookings

import (
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Формат хранения совместим с localStorage-форматом исходного SPA:
// camelCase-поля, отзыв встроен в запись, поле aiConfirmationMessage опционально

type storedReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type storedBooking struct {
	ID                  string        `json:"id"`
	ServiceID           string        `json:"serviceId"`
	ServiceName         string        `json:"serviceName"`
	CustomerName        string        `json:"customerName"`
	CustomerPhone       string        `json:"customerPhone"`
	Date                string        `json:"date"`
	Time                string        `json:"time"`
	Status              string        `json:"status"`
	ConfirmationMessage *string       `json:"aiConfirmationMessage,omitempty"`
	Review              *storedReview `json:"review,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

func toStored(b *domain.Booking) storedBooking {
	stored := storedBooking{
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
		stored.Review = &storedReview{
			Rating:  b.Review.Rating,
			Comment: b.Review.Comment,
			Date:    b.Review.Date,
		}
	}
	return stored
}

func fromStored(s storedBooking) *domain.Booking {
	booking := &domain.Booking{
		ID:                  s.ID,
		ServiceID:           s.ServiceID,
		ServiceName:         s.ServiceName,
		CustomerName:        s.CustomerName,
		CustomerPhone:       s.CustomerPhone,
		Date:                s.Date,
		Time:                types.TimeString(s.Time),
		Status:              domain.BookingStatus(s.Status),
		ConfirmationMessage: s.ConfirmationMessage,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.Review != nil {
		booking.Review = &domain.Review{
			Rating:  s.Review.Rating,
			Comment: s.Review.Comment,
			Date:    s.Review.Date,
		}
	}
	return booking
}

// clone возвращает глубокую копию записи
// Репозиторий никогда не отдает наружу указатели на внутреннее состояние
func clone(b *domain.Booking) *domain.Booking {
	copied := *b
	if b.ConfirmationMessage != nil {
		msg := *b.ConfirmationMessage
		copied.ConfirmationMessage = &msg
	}
	if b.Review != nil {
		review := *b.Review
		copied.Review = &review
	}
	return &copied
}
