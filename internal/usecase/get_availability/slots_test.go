package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

func workingHours(start, end string) *domain.BusinessHours {
	return &domain.BusinessHours{
		ID:        1,
		Weekday:   1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Active:    true,
	}
}

func activeAppointment(start, end string) *domain.Appointment {
	return &domain.Appointment{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusConfirmed,
	}
}

func slotTimes(slots []Slot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time.String()
	}
	return times
}

func TestGenerateSlots_CandidateGrid(t *testing.T) {
	// Окно 09:00-12:00, услуга 60 минут: последний допустимый старт 11:00
	slots, err := generateSlots(workingHours("09:00:00", "12:00:00"), 60, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00:00", "09:30:00", "10:00:00", "10:30:00", "11:00:00",
	}, slotTimes(slots))

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s must be free on an empty day", s.Time)
	}
}

func TestGenerateSlots_ExistingAppointmentBlocksOverlaps(t *testing.T) {
	appointments := []*domain.Appointment{
		activeAppointment("10:00:00", "11:00:00"),
	}

	slots, err := generateSlots(workingHours("09:00:00", "12:00:00"), 60, appointments)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	available := map[string]bool{}
	for _, s := range slots {
		available[s.Time.String()] = s.Available
	}

	// 09:30-10:30, 10:00-11:00 и 10:30-11:30 пересекаются с записью.
	// 09:00-10:00 и 11:00-12:00 граничат и остаются свободными.
	assert.True(t, available["09:00:00"])
	assert.False(t, available["09:30:00"])
	assert.False(t, available["10:00:00"])
	assert.False(t, available["10:30:00"])
	assert.True(t, available["11:00:00"])
}

func TestGenerateSlots_CancelledAppointmentFreesSlot(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			StartTime: types.TimeString("10:00:00"),
			EndTime:   types.TimeString("11:00:00"),
			Status:    domain.StatusCancelled,
		},
	}

	slots, err := generateSlots(workingHours("09:00:00", "12:00:00"), 60, appointments)
	require.NoError(t, err)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s must ignore the cancelled appointment", s.Time)
	}
}

func TestGenerateSlots_MisalignedAppointmentStillBlocks(t *testing.T) {
	// Запись не выровнена по 30-минутной сетке
	appointments := []*domain.Appointment{
		activeAppointment("10:10:00", "10:50:00"),
	}

	slots, err := generateSlots(workingHours("09:00:00", "12:00:00"), 60, appointments)
	require.NoError(t, err)

	available := map[string]bool{}
	for _, s := range slots {
		available[s.Time.String()] = s.Available
	}

	assert.True(t, available["09:00:00"])
	assert.False(t, available["09:30:00"]) // [09:30, 10:30) пересекает [10:10, 10:50)
	assert.False(t, available["10:00:00"])
	assert.False(t, available["10:30:00"])
	assert.True(t, available["11:00:00"])
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	// Услуга ровно в окно: единственный кандидат в начале окна
	slots, err := generateSlots(workingHours("09:00:00", "10:00:00"), 60, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00:00"}, slotTimes(slots))
	assert.True(t, slots[0].Available)
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	slots, err := generateSlots(workingHours("09:00:00", "10:00:00"), 90, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	appointments := []*domain.Appointment{
		activeAppointment("09:00:00", "09:45:00"),
	}

	first, err := generateSlots(workingHours("09:00:00", "12:00:00"), 30, appointments)
	require.NoError(t, err)

	second, err := generateSlots(workingHours("09:00:00", "12:00:00"), 30, appointments)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
