package get_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/ptr"
)

type UseCase struct {
	bookings BookingRepository
	services ServiceRepository
	settings SettingsRepository
	textGen  TextGenerator
	time     TimeProvider
	logger   Logger
}

func New(
	bookings BookingRepository,
	services ServiceRepository,
	settings SettingsRepository,
	textGen TextGenerator,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookings: bookings,
		services: services,
		settings: settings,
		textGen:  textGen,
		time:     timeProvider,
		logger:   logger,
	}
}

// Execute собирает сводку дня для персонала
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Текущая дата
	today := uc.time.Now().Format(domain.DateFormat)

	// 2. Настройки магазина
	shop, err := uc.settings.Get(ctx)
	if err != nil {
		uc.logger.Error("UseCase.Execute - получение настроек магазина: %v", err)
		return nil, fmt.Errorf("%w: Execute - settings.Get: %v", ErrInternal, err)
	}

	// 3. Записи на сегодня (репозиторий сортирует по времени)
	// Отмененные скрыты, завершенные в течение дня остаются в списке
	todayBookings, err := uc.bookings.List(ctx, domain.BookingsFilter{
		Date: ptr.Ptr(today),
	})
	if err != nil {
		uc.logger.Error("UseCase.Execute - получение записей на сегодня: %v", err)
		return nil, fmt.Errorf("%w: Execute - bookings.List(today): %v", ErrInternal, err)
	}

	// 4. Все записи, включая отмененные, для расчета выручки и отзывов
	allBookings, err := uc.bookings.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		uc.logger.Error("UseCase.Execute - получение всех записей: %v", err)
		return nil, fmt.Errorf("%w: Execute - bookings.List(all): %v", ErrInternal, err)
	}

	// 5. Актуальный каталог услуг для цен
	catalog, err := uc.services.List(ctx)
	if err != nil {
		uc.logger.Error("UseCase.Execute - получение каталога услуг: %v", err)
		return nil, fmt.Errorf("%w: Execute - services.List: %v", ErrInternal, err)
	}

	priceByID := make(map[string]float64, len(catalog))
	for _, svc := range catalog {
		priceByID[svc.ID] = svc.Price
	}

	// 6. Выручка по текущим ценам каталога: завершенные записи
	// плюс подтвержденные на сегодня. Удаленная услуга дает 0.
	var revenue float64
	var reviewCount int
	for _, b := range allBookings {
		if b.IsCompleted() || (b.Status == domain.StatusConfirmed && b.Date == today) {
			revenue += priceByID[b.ServiceID]
		}
		if b.HasReview() {
			reviewCount++
		}
	}

	// 7. Мотивационная сводка дня строится только по предстоящим
	// подтвержденным записям
	confirmedToday := make([]*domain.Booking, 0, len(todayBookings))
	for _, b := range todayBookings {
		if b.Status == domain.StatusConfirmed {
			confirmedToday = append(confirmedToday, b)
		}
	}
	summary := uc.textGen.SummarizeDay(ctx, confirmedToday, shop.Name)

	return &Response{
		ShopName:      shop.Name,
		Tagline:       shop.Tagline,
		Summary:       summary,
		TodayBookings: todayBookings,
		TotalRevenue:  revenue,
		ReviewCount:   reviewCount,
		AverageRating: domain.AverageRating(allBookings),
	}, nil
}
