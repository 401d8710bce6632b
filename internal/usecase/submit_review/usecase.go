package submit_review

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servicesRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// UseCase use case для самостоятельной отправки отзыва клиентом
//
// Реальной привязки к прошлому визиту нет: отзыв оформляется как синтетическая
// завершенная запись с текущими датой и временем. Это осознанное упрощение
// модели: отдельной сущности отзыва нет
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отправки отзыва
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReview: service=%s, customer=%q, rating=%d",
		req.ServiceID, req.CustomerName, req.Rating)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitReview: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование услуги и берем название для денормализации
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("SubmitReview: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SubmitReview: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Нормализуем оценку: default 5, границы 1..5
	rating := req.Rating
	if rating == 0 {
		rating = domain.DefaultRating
	}
	if rating < domain.MinRating {
		rating = domain.MinRating
	}
	if rating > domain.MaxRating {
		rating = domain.MaxRating
	}

	// 5. Синтезируем завершенную запись, несущую отзыв
	today := now.Format(domain.DateFormat)
	booking := &domain.Booking{
		ID:            "review-" + uuid.NewString(),
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: "N/A",
		Date:          today,
		Time:          types.NewTimeString(now),
		Status:        domain.StatusCompleted,
		Review: &domain.Review{
			Rating:  rating,
			Comment: req.Comment,
			Date:    today,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 6. Добавляем запись в коллекцию (с сохранением состояния)
	if err := uc.bookingRepo.Append(ctx, booking); err != nil {
		uc.logger.Error("SubmitReview: failed to append review booking: %v", err)
		return nil, fmt.Errorf("%w: failed to append review booking: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitReview: successfully created review booking id=%s", booking.ID)

	return &Response{
		BookingID:   booking.ID,
		ServiceName: booking.ServiceName,
		Rating:      rating,
		Date:        today,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if req.Rating < 0 || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d",
			ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	return nil
}
