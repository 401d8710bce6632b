package get_dashboard

import "github.com/m04kA/BarberBookingService/internal/domain"

// Response модель ответа дашборда персонала
type Response struct {
	ShopName string // Название магазина
	Tagline  string // Слоган магазина

	// Summary мотивационная сводка дня (AI или fallback)
	Summary string

	// TodayBookings неотмененные записи на сегодня по возрастанию времени
	// Завершенные в течение дня записи остаются в списке
	TodayBookings []*domain.Booking

	// TotalRevenue выручка: сумма цен услуг по завершенным записям
	// и подтвержденным записям на сегодня
	TotalRevenue float64

	ReviewCount   int     // Количество записей с отзывами
	AverageRating float64 // Средняя оценка (1 знак после запятой, 0 без отзывов)
}
