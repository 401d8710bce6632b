package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		ts, err := NewTimeStringFromString("14:30")
		require.NoError(t, err)
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("некорректный формат", func(t *testing.T) {
		for _, raw := range []string{"", "9:30:00", "25:00", "14:60", "abc"} {
			_, err := NewTimeStringFromString(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", raw)
		}
	})
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	t.Run("внутри суток", func(t *testing.T) {
		ts, err := NewTimeStringFromMinutes(9*60 + 30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("границы суток", func(t *testing.T) {
		ts, err := NewTimeStringFromMinutes(0)
		require.NoError(t, err)
		assert.Equal(t, TimeString("00:00"), ts)

		ts, err = NewTimeStringFromMinutes(24*60 - 1)
		require.NoError(t, err)
		assert.Equal(t, TimeString("23:59"), ts)

		_, err = NewTimeStringFromMinutes(24 * 60)
		assert.ErrorIs(t, err, ErrTimeOutOfDay)

		_, err = NewTimeStringFromMinutes(-1)
		assert.ErrorIs(t, err, ErrTimeOutOfDay)
	})
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("17:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestTimeString_Ordering(t *testing.T) {
	// Сравнение строк в формате HH:MM совпадает с хронологическим порядком
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
