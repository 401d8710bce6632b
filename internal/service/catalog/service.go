package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servstore "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
)

// Service управление каталогом услуг барбершопа
type Service struct {
	repo   ServiceRepository
	time   TimeProvider
	logger Logger
}

func New(repo ServiceRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:   repo,
		time:   timeProvider,
		logger: logger,
	}
}

// List возвращает каталог услуг в порядке добавления
func (s *Service) List(ctx context.Context) ([]*domain.Service, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Service.List - получение каталога: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	return items, nil
}

// Create добавляет услугу в каталог, недостающие поля заполняются по умолчанию
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: Create - название услуги обязательно", ErrInvalidInput)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: Create - цена должна быть больше нуля", ErrInvalidInput)
	}

	now := s.time.Now()
	svc := &domain.Service{
		ID:              uuid.NewString(),
		Name:            name,
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Image:           req.Image,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if svc.DurationMinutes <= 0 {
		svc.DurationMinutes = domain.DefaultServiceDurationMinutes
	}
	if svc.Image == "" {
		svc.Image = domain.DefaultServiceImage
	}

	if err := s.repo.Append(ctx, svc); err != nil {
		s.logger.Error("Service.Create - сохранение услуги: %v", err)
		return nil, fmt.Errorf("%w: Create - repo.Append: %v", ErrInternal, err)
	}

	s.logger.Info("Service.Create - услуга %s добавлена в каталог", svc.ID)
	return svc, nil
}

// Update частично обновляет услугу каталога
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*domain.Service, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: Update - id услуги обязателен", ErrInvalidInput)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: Update - название услуги не может быть пустым", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("%w: Update - цена должна быть больше нуля", ErrInvalidInput)
	}

	svc, err := s.repo.Update(ctx, id, domain.ServiceUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Image:           req.Image,
	})
	switch {
	case errors.Is(err, servstore.ErrServiceNotFound):
		return nil, fmt.Errorf("%w: Update - id %s: %v", ErrServiceNotFound, id, err)
	case err != nil:
		s.logger.Error("Service.Update - обновление услуги %s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repo.Update: %v", ErrInternal, err)
	}

	return svc, nil
}

// Delete удаляет услугу из каталога. Существующие записи сохраняют
// денормализованное название услуги и не затрагиваются.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: Delete - id услуги обязателен", ErrInvalidInput)
	}

	err := s.repo.Delete(ctx, id)
	switch {
	case errors.Is(err, servstore.ErrServiceNotFound):
		return fmt.Errorf("%w: Delete - id %s: %v", ErrServiceNotFound, id, err)
	case err != nil:
		s.logger.Error("Service.Delete - удаление услуги %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repo.Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Service.Delete - услуга %s удалена из каталога", id)
	return nil
}
