package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
)

// Mock структуры

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (domain.ShopSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ShopSettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, name, tagline string) (domain.ShopSettings, error) {
	args := m.Called(ctx, name, tagline)
	return args.Get(0).(domain.ShopSettings), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUpdate_TrimsAndValidates(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("Update", mock.Anything, "БАРБЕРШОП НЕОН", "Будущее стиля").
		Return(domain.ShopSettings{Name: "БАРБЕРШОП НЕОН", Tagline: "Будущее стиля"}, nil)

	svc := New(repo, "http://localhost:8080", nopLogger{})

	updated, err := svc.Update(context.Background(), "  БАРБЕРШОП НЕОН  ", " Будущее стиля ")
	require.NoError(t, err)
	assert.Equal(t, "БАРБЕРШОП НЕОН", updated.Name)

	_, err = svc.Update(context.Background(), "   ", "слоган")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestShareLink(t *testing.T) {
	svc := New(new(MockSettingsRepository), "http://localhost:8080/", nopLogger{})
	assert.Equal(t, "http://localhost:8080/?view=client", svc.ShareLink(context.Background()))

	svc = New(new(MockSettingsRepository), "https://neon.example.com", nopLogger{})
	assert.Equal(t, "https://neon.example.com/?view=client", svc.ShareLink(context.Background()))
}
