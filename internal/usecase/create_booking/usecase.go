package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servicesRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
	"github.com/m04kA/BarberBookingService/pkg/ptr"
)

// UseCase use case для создания записи клиентом
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	settingsRepo SettingsRepository
	textGen      TextGenerator
	counter      BookingCounter // Опционально, может быть nil
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	textGen TextGenerator,
	counter BookingCounter,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		textGen:      textGen,
		counter:      counter,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Занятость слота проверяется на границе операции: инвариант "не более одной
// активной записи на (дату, время)" не зависит от дисциплины вызывающей стороны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, date=%s, time=%s, customer=%q",
		req.ServiceID, req.Date, req.Time, req.CustomerName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу для денормализации названия
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем занятость слота
	// Слот занят, если на эту дату и время есть запись со статусом != cancelled
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:            ptr.Ptr(req.Date),
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		if b.Time == req.Time && b.BlocksSlot() {
			uc.logger.Warn("CreateBooking: slot %s %s is already taken by booking id=%s",
				req.Date, req.Time, b.ID)
			return nil, ErrSlotNotAvailable
		}
	}

	// 5. Собираем запись с денормализацией названия услуги
	booking := &domain.Booking{
		ID:            uuid.NewString(),
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.StatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// 6. Запрашиваем подтверждение у генератора текста
	// Генерация не может провалить операцию: адаптер всегда возвращает строку
	// (при недоступности - fallback), запись не теряется из-за его отказа
	shopName := ""
	if settings, err := uc.settingsRepo.Get(ctx); err == nil {
		shopName = settings.Name
	}
	message := uc.textGen.ConfirmBooking(ctx, booking, shopName)
	booking.ConfirmationMessage = &message

	// 7. Добавляем запись в коллекцию (с сохранением состояния)
	if err := uc.bookingRepo.Append(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to append booking: %v", err)
		return nil, fmt.Errorf("%w: failed to append booking: %v", ErrInternal, err)
	}

	if uc.counter != nil {
		uc.counter.IncBookingCreated()
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	return &Response{
		ID:                  booking.ID,
		ServiceID:           booking.ServiceID,
		Date:                booking.Date,
		Time:                booking.Time,
		Status:              string(booking.Status),
		ServiceName:         booking.ServiceName,
		CustomerName:        booking.CustomerName,
		CustomerPhone:       booking.CustomerPhone,
		ConfirmationMessage: message,
		CreatedAt:           booking.CreatedAt,
	}, nil
}
