package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{name: "identical", aStart: "10:00:00", aEnd: "11:00:00", bStart: "10:00:00", bEnd: "11:00:00", want: true},
		{name: "partial overlap left", aStart: "09:30:00", aEnd: "10:30:00", bStart: "10:00:00", bEnd: "11:00:00", want: true},
		{name: "partial overlap right", aStart: "10:30:00", aEnd: "11:30:00", bStart: "10:00:00", bEnd: "11:00:00", want: true},
		{name: "contained", aStart: "10:15:00", aEnd: "10:45:00", bStart: "10:00:00", bEnd: "11:00:00", want: true},
		{name: "containing", aStart: "09:00:00", aEnd: "12:00:00", bStart: "10:00:00", bEnd: "11:00:00", want: true},
		{name: "touching end to start", aStart: "09:00:00", aEnd: "10:00:00", bStart: "10:00:00", bEnd: "11:00:00", want: false},
		{name: "touching start to end", aStart: "11:00:00", aEnd: "12:00:00", bStart: "10:00:00", bEnd: "11:00:00", want: false},
		{name: "disjoint", aStart: "08:00:00", aEnd: "09:00:00", bStart: "10:00:00", bEnd: "11:00:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				types.TimeString(tt.aStart), types.TimeString(tt.aEnd),
				types.TimeString(tt.bStart), types.TimeString(tt.bEnd),
			)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			reversed := Overlaps(
				types.TimeString(tt.bStart), types.TimeString(tt.bEnd),
				types.TimeString(tt.aStart), types.TimeString(tt.aEnd),
			)
			assert.Equal(t, tt.want, reversed)
		})
	}
}

func TestAppointment_CountsForOverlap(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		appt := &Appointment{Status: status}
		assert.True(t, appt.CountsForOverlap(), "status %s must block its interval", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.CountsForOverlap())
}

func TestAppointment_IsOwnedBy(t *testing.T) {
	appt := &Appointment{UserID: 7}
	assert.True(t, appt.IsOwnedBy(7))
	assert.False(t, appt.IsOwnedBy(8))
}
