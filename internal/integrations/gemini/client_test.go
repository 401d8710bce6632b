package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BarberBookingService/internal/domain"
	"github.com/m04kA/BarberBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newFallbackClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), "", "gemini-2.0-flash", 5*time.Second, nopLogger{}, nil)
	require.NoError(t, err)
	return client
}

func TestConfirmBooking_NoAPIKey(t *testing.T) {
	client := newFallbackClient(t)

	booking := &domain.Booking{
		ID:          "b-1",
		ServiceName: "Неоновый фейд",
		Time:        types.TimeString("10:00"),
	}

	message := client.ConfirmBooking(context.Background(), booking, "БАРБЕРШОП НЕОН")
	assert.Equal(t, "Запись подтверждена: Неоновый фейд в 10:00.", message)

	// Без ключа ответ детерминирован
	assert.Equal(t, message, client.ConfirmBooking(context.Background(), booking, "БАРБЕРШОП НЕОН"))
}

func TestSummarizeDay_NoAPIKey(t *testing.T) {
	client := newFallbackClient(t)

	summary := client.SummarizeDay(context.Background(), nil, "БАРБЕРШОП НЕОН")
	assert.NotEmpty(t, summary)
	assert.Equal(t, summary, client.SummarizeDay(context.Background(), nil, "БАРБЕРШОП НЕОН"))
}

func TestConfirmBooking_NeverEmpty(t *testing.T) {
	client := newFallbackClient(t)

	// Даже для пустой записи возвращается пригодная для показа строка
	message := client.ConfirmBooking(context.Background(), &domain.Booking{}, "")
	assert.NotEmpty(t, message)
}
