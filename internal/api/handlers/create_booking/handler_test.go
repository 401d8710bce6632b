package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	uc "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
)

// Mock структуры

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *uc.Request) (*uc.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uc.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Error(format string, v ...interface{}) {}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	usecase := new(MockUseCase)
	usecase.On("Execute", mock.Anything, mock.MatchedBy(func(r *uc.Request) bool {
		return r.ServiceID == "1" && r.Time == "10:00"
	})).Return(&uc.Response{
		ID:                  "b-1",
		ServiceID:           "1",
		ServiceName:         "Неоновый фейд",
		CustomerName:        "Джон Уик",
		Date:                "2024-03-15",
		Time:                "10:00",
		Status:              "confirmed",
		ConfirmationMessage: "Ждем вас!",
		CreatedAt:           time.Now(),
	}, nil)

	handler := New(usecase, nopLogger{})
	rec := postJSON(t, handler.Handle, Request{
		ServiceID:    "1",
		Date:         "2024-03-15",
		Time:         "10:00",
		CustomerName: "Джон Уик",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "Ждем вас!", resp.ConfirmationMessage)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_SlotTaken(t *testing.T) {
	usecase := new(MockUseCase)
	usecase.On("Execute", mock.Anything, mock.Anything).Return(nil, uc.ErrSlotNotAvailable)

	handler := New(usecase, nopLogger{})
	rec := postJSON(t, handler.Handle, Request{
		ServiceID:    "1",
		Date:         "2024-03-15",
		Time:         "10:00",
		CustomerName: "Джон Уик",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	usecase := new(MockUseCase)
	handler := New(usecase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	usecase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ValidationError(t *testing.T) {
	usecase := new(MockUseCase)
	usecase.On("Execute", mock.Anything, mock.Anything).Return(nil, uc.ErrInvalidInput)

	handler := New(usecase, nopLogger{})
	rec := postJSON(t, handler.Handle, Request{ServiceID: "1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
