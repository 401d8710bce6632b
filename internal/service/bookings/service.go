package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/BarberBookingService/internal/domain"
	bookstore "github.com/m04kA/BarberBookingService/internal/infra/storage/bookings"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Service операции персонала над записями: просмотр, правка, смена статусов
type Service struct {
	repo   BookingRepository
	logger Logger
}

func New(repo BookingRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: GetByID - id записи обязателен", ErrInvalidInput)
	}

	booking, err := s.repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, bookstore.ErrBookingNotFound):
		return nil, fmt.Errorf("%w: GetByID - id %s: %v", ErrBookingNotFound, id, err)
	case err != nil:
		s.logger.Error("Service.GetByID - получение записи %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repo.GetByID: %v", ErrInternal, err)
	}

	return booking, nil
}

// List возвращает записи по фильтру, включая отмененные
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	filter.IncludeInactive = true

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Service.List - получение записей: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	return items, nil
}

// Update полностью заменяет изменяемые поля записи
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: Update - id записи обязателен", ErrInvalidInput)
	}

	upd, err := s.buildUpdate(req)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Update(ctx, id, upd)
	switch {
	case errors.Is(err, bookstore.ErrBookingNotFound):
		return nil, fmt.Errorf("%w: Update - id %s: %v", ErrBookingNotFound, id, err)
	case err != nil:
		s.logger.Error("Service.Update - обновление записи %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repo.Update: %v", ErrInternal, err)
	}

	return booking, nil
}

// Complete переводит запись в статус completed
// Повторное завершение уже завершенной записи не является ошибкой
func (s *Service) Complete(ctx context.Context, id string) (*domain.Booking, error) {
	return s.changeStatus(ctx, id, domain.StatusCompleted)
}

// Cancel отменяет запись и освобождает её слот
// Повторная отмена уже отмененной записи не является ошибкой
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	return s.changeStatus(ctx, id, domain.StatusCancelled)
}

func (s *Service) changeStatus(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: changeStatus - id записи обязателен", ErrInvalidInput)
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Повторный перевод в тот же статус ничего не меняет
	if booking.Status == target {
		return booking, nil
	}
	if booking.Status != domain.StatusConfirmed {
		return nil, fmt.Errorf("%w: changeStatus - запись %s в статусе %s", ErrInvalidStatusChange, id, booking.Status)
	}

	updated, err := s.repo.SetStatus(ctx, id, target)
	switch {
	case errors.Is(err, bookstore.ErrBookingNotFound):
		return nil, fmt.Errorf("%w: changeStatus - id %s: %v", ErrBookingNotFound, id, err)
	case err != nil:
		s.logger.Error("Service.changeStatus - запись %s -> %s: %v", id, target, err)
		return nil, fmt.Errorf("%w: changeStatus - repo.SetStatus: %v", ErrInternal, err)
	}

	s.logger.Info("Service.changeStatus - запись %s переведена в статус %s", id, target)
	return updated, nil
}

// History возвращает завершенные записи, новые первыми
func (s *Service) History(ctx context.Context) ([]*domain.Booking, error) {
	status := domain.StatusCompleted
	items, err := s.repo.List(ctx, domain.BookingsFilter{Status: &status})
	if err != nil {
		s.logger.Error("Service.History - получение истории: %v", err)
		return nil, fmt.Errorf("%w: History: %v", ErrInternal, err)
	}
	return items, nil
}

// Reviews возвращает записи с отзывами, свежие отзывы первыми
func (s *Service) Reviews(ctx context.Context) ([]*domain.Booking, error) {
	items, err := s.repo.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Service.Reviews - получение отзывов: %v", err)
		return nil, fmt.Errorf("%w: Reviews: %v", ErrInternal, err)
	}

	reviewed := make([]*domain.Booking, 0, len(items))
	for _, b := range items {
		if b.HasReview() {
			reviewed = append(reviewed, b)
		}
	}
	sort.SliceStable(reviewed, func(i, j int) bool {
		return reviewed[i].Review.Date > reviewed[j].Review.Date
	})

	return reviewed, nil
}

// AverageRating средняя оценка по всем отзывам, 0 при их отсутствии
func (s *Service) AverageRating(ctx context.Context) (float64, error) {
	items, err := s.repo.List(ctx, domain.BookingsFilter{IncludeInactive: true})
	if err != nil {
		s.logger.Error("Service.AverageRating - получение записей: %v", err)
		return 0, fmt.Errorf("%w: AverageRating: %v", ErrInternal, err)
	}
	return domain.AverageRating(items), nil
}

func (s *Service) buildUpdate(req UpdateRequest) (domain.BookingUpdate, error) {
	var upd domain.BookingUpdate

	upd.CustomerName = strings.TrimSpace(req.CustomerName)
	if upd.CustomerName == "" {
		return upd, fmt.Errorf("%w: buildUpdate - имя клиента обязательно", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return upd, fmt.Errorf("%w: buildUpdate - дата должна быть в формате YYYY-MM-DD", ErrInvalidInput)
	}
	upd.Date = req.Date

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return upd, fmt.Errorf("%w: buildUpdate - время должно быть в формате HH:MM", ErrInvalidInput)
	}
	minutes, err := slot.Minutes()
	if err != nil {
		return upd, fmt.Errorf("%w: buildUpdate - время должно быть в формате HH:MM", ErrInvalidInput)
	}
	if minutes < domain.OpenHour*60 || minutes >= domain.CloseHour*60 || minutes%domain.SlotDurationMinutes != 0 {
		return upd, fmt.Errorf("%w: buildUpdate - время вне рабочей сетки", ErrInvalidInput)
	}
	upd.Time = slot

	upd.Status = domain.BookingStatus(req.Status)
	if !upd.Status.IsValid() {
		return upd, fmt.Errorf("%w: buildUpdate - недопустимый статус %q", ErrInvalidInput, req.Status)
	}

	return upd, nil
}
