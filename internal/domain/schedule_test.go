package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

func TestStoredWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{date: "2026-03-15", want: 0}, // воскресенье
		{date: "2026-03-16", want: 1}, // понедельник
		{date: "2026-03-17", want: 2},
		{date: "2026-03-18", want: 3},
		{date: "2026-03-19", want: 4},
		{date: "2026-03-20", want: 5},
		{date: "2026-03-21", want: 6}, // суббота
	}

	for _, tt := range tests {
		date, err := time.Parse(DateFormat, tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, StoredWeekday(date), "date %s", tt.date)
	}
}

func TestBusinessHours_WindowMinutes(t *testing.T) {
	hours := &BusinessHours{
		StartTime: types.TimeString("09:00:00"),
		EndTime:   types.TimeString("18:00:00"),
	}

	mins, err := hours.WindowMinutes()
	require.NoError(t, err)
	assert.Equal(t, 540, mins)
}
