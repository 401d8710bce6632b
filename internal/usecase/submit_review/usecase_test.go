package submit_review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	servicesRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Append(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func beardSculpt() *domain.Service {
	return &domain.Service{ID: "3", Name: "Скульптура бороды", Price: 30}
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)

	serviceRepo.On("GetByID", mock.Anything, "3").Return(beardSculpt(), nil)
	bookingRepo.On("Append", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusCompleted &&
			b.Review != nil &&
			b.Review.Rating == 4 &&
			b.Review.Comment == "Отличная работа" &&
			b.ServiceName == "Скульптура бороды"
	})).Return(nil)

	uc := NewUseCase(bookingRepo, serviceRepo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:    "3",
		CustomerName: "Тони Старк",
		Rating:       4,
		Comment:      "Отличная работа",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, "Скульптура бороды", resp.ServiceName)
	assert.Equal(t, 4, resp.Rating)
	bookingRepo.AssertNumberOfCalls(t, "Append", 1)
}

func TestExecute_ZeroRatingDefaultsToFive(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	serviceRepo := new(MockServiceRepository)

	serviceRepo.On("GetByID", mock.Anything, "3").Return(beardSculpt(), nil)
	bookingRepo.On("Append", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Review != nil && b.Review.Rating == domain.DefaultRating
	})).Return(nil)

	uc := NewUseCase(bookingRepo, serviceRepo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:    "3",
		CustomerName: "Тони Старк",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRating, resp.Rating)
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	uc := NewUseCase(bookingRepo, new(MockServiceRepository), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CustomerName: "Тони Старк"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: "3", CustomerName: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Отзыв не сохраняется при ошибке валидации
	bookingRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	serviceRepo := new(MockServiceRepository)
	serviceRepo.On("GetByID", mock.Anything, "missing").Return(nil, servicesRepo.ErrServiceNotFound)

	uc := NewUseCase(new(MockBookingRepository), serviceRepo, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ServiceID: "missing", CustomerName: "Тони Старк"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
