package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Service настройки барбершопа и публичная ссылка для клиентов
type Service struct {
	repo      SettingsRepository
	publicURL string
	logger    Logger
}

func New(repo SettingsRepository, publicURL string, logger Logger) *Service {
	return &Service{
		repo:      repo,
		publicURL: publicURL,
		logger:    logger,
	}
}

// Get возвращает текущие настройки магазина
func (s *Service) Get(ctx context.Context) (domain.ShopSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Service.Get - получение настроек: %v", err)
		return domain.ShopSettings{}, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}
	return current, nil
}

// Update заменяет название и слоган магазина
func (s *Service) Update(ctx context.Context, name, tagline string) (domain.ShopSettings, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ShopSettings{}, fmt.Errorf("%w: Update - название магазина обязательно", ErrInvalidInput)
	}

	updated, err := s.repo.Update(ctx, name, strings.TrimSpace(tagline))
	if err != nil {
		s.logger.Error("Service.Update - сохранение настроек: %v", err)
		return domain.ShopSettings{}, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	s.logger.Info("Service.Update - настройки магазина обновлены")
	return updated, nil
}

// ShareLink возвращает публичную ссылку для записи клиентов
func (s *Service) ShareLink(_ context.Context) string {
	return strings.TrimRight(s.publicURL, "/") + "/?view=client"
}
