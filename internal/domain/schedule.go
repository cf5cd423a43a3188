package domain

import (
	"time"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// BusinessHours represents the bookable window for one day of the week.
// Weekday uses the stored 0=Sunday..6=Saturday convention, see StoredWeekday.
type BusinessHours struct {
	ID        int64
	Weekday   int
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
}

// WindowMinutes returns the length of the window in minutes
func (h *BusinessHours) WindowMinutes() (int, error) {
	start, err := h.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	end, err := h.EndTime.Minutes()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// BlockedDate represents a calendar date fully excluded from booking
// regardless of business hours. Unique per date.
type BlockedDate struct {
	ID     int64
	Date   time.Time
	Reason *string
}

// StoredWeekday maps a calendar date to the weekday index used by stored
// BusinessHours rows: 0=Sunday .. 6=Saturday.
//
// Историческая справка: исходные данные записывались JS-бэкендом, где
// getDay() возвращает 0 для воскресенья. time.Weekday в Go использует то же
// соглашение, поэтому преобразование сводится к приведению типа. Функция
// выделена явно, чтобы соглашение было зафиксировано и покрыто тестами, а
// не подразумевалось.
func StoredWeekday(date time.Time) int {
	return int(date.Weekday())
}
