package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servstore "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
)

// Mock структуры

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Append(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, id string, upd domain.ServiceUpdate) (*domain.Service, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService(repo ServiceRepository) *Service {
	return New(repo, &fixedTime{now: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}, nopLogger{})
}

func TestCreate_FillsDefaults(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Append", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.ID != "" &&
			s.DurationMinutes == domain.DefaultServiceDurationMinutes &&
			s.Image == domain.DefaultServiceImage
	})).Return(nil)

	svc := newService(repo)
	created, err := svc.Create(context.Background(), CreateRequest{
		Name:  "Королевское бритье",
		Price: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, "Королевское бритье", created.Name)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, created.DurationMinutes)
	assert.Equal(t, domain.DefaultServiceImage, created.Image)
}

func TestCreate_Validation(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{Name: "  ", Price: 40})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateRequest{Name: "Стрижка", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, servstore.ErrServiceNotFound)

	svc := newService(repo)
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdate_RejectsNonPositivePrice(t *testing.T) {
	repo := new(MockServiceRepository)
	svc := newService(repo)

	price := -5.0
	_, err := svc.Update(context.Background(), "1", UpdateRequest{Price: &price})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Delete", mock.Anything, "2").Return(nil)

	svc := newService(repo)
	assert.NoError(t, svc.Delete(context.Background(), "2"))

	repo.On("Delete", mock.Anything, "missing").Return(servstore.ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrServiceNotFound)
}
