package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "HH:MM", input: "09:30", want: "09:30:00"},
		{name: "HH:MM:SS", input: "09:30:15", want: "09:30:15"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 14, 45, 30, 0, time.UTC))
	assert.Equal(t, TimeString("14:45:30"), ts)
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30:00"), end)

	// Выход за пределы суток
	late, err := NewTimeStringFromString("23:30")
	require.NoError(t, err)

	_, err = late.AddMinutes(60)
	assert.ErrorIs(t, err, ErrPastMidnight)

	// Ровно полночь - уже следующий день
	_, err = late.AddMinutes(30)
	assert.ErrorIs(t, err, ErrPastMidnight)
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)

	mins, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, mins)
}

func TestTimeString_Comparison(t *testing.T) {
	a := TimeString("09:00:00")
	b := TimeString("10:00:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:15:00"))
	assert.Equal(t, TimeString("10:15:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:00:00"), ts)

	require.NoError(t, ts.Scan([]byte("12:30:00")))
	assert.Equal(t, TimeString("12:30:00"), ts)

	assert.Error(t, ts.Scan(42))
}
