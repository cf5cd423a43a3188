package domain

import (
	"time"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// Appointment represents a booked time slot for a service
type Appointment struct {
	ID        int64
	UserID    int64
	ServiceID int64

	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsForOverlap returns true if the appointment's interval participates
// in overlap checks. Cancelled appointments are soft-deleted for scheduling
// purposes but kept for audit.
func (a *Appointment) CountsForOverlap() bool {
	return !a.Status.IsCancelled()
}

// IsOwnedBy returns true if the appointment belongs to the given user
func (a *Appointment) IsOwnedBy(userID int64) bool {
	return a.UserID == userID
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [start, end).
// Интервалы пересекаются только при строгих неравенствах: граничащие
// интервалы (конец одного равен началу другого) пересечением не считаются.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Date             *time.Time // Конкретная дата (опционально)
	UserID           *int64     // Фильтр по владельцу (опционально)
	Status           *AppointmentStatus
	IncludeCancelled bool // Включать ли отменённые записи
}
