package get_available_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func booking(date, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     "b-" + date + "-" + slot,
		Date:   date,
		Time:   types.TimeString(slot),
		Status: status,
	}
}

func TestExecute_EmptyDay(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-03-15"})
	require.NoError(t, err)

	// Рабочий день 09:00-18:00 с шагом 30 минут - ровно 18 слотов
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1].Time)

	for i, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Time)
		if i > 0 {
			assert.True(t, resp.Slots[i-1].Time.IsBefore(slot.Time))
		}
	}
}

func TestExecute_BlockedSlots(t *testing.T) {
	const date = "2024-03-15"

	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{
		booking(date, "10:00", domain.StatusConfirmed),
		booking(date, "14:30", domain.StatusCompleted),
		booking(date, "11:00", domain.StatusCancelled),
	}, nil)

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		availability[slot.Time] = slot.Available
	}

	// Подтвержденные и завершенные записи блокируют слот
	assert.False(t, availability["10:00"])
	assert.False(t, availability["14:30"])
	// Отмененная запись освобождает слот
	assert.True(t, availability["11:00"])
}

func TestExecute_DuplicateBookingsStillBlock(t *testing.T) {
	const date = "2024-03-15"

	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{
		booking(date, "10:00", domain.StatusConfirmed),
		booking(date, "10:00", domain.StatusConfirmed),
	}, nil)

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.Time == "10:00" {
			assert.False(t, slot.Available)
		}
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(new(MockBookingRepository), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "15.03.2024"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("storage down"))

	uc := NewUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: "2024-03-15"})
	assert.ErrorIs(t, err, ErrInternal)
}
