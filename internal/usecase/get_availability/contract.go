package get_availability

import (
	"context"
	"time"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает записи на дату; отменённые исключаются
	GetByDate(ctx context.Context, date time.Time, includeCancelled bool) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория календарных правил
type ScheduleRepository interface {
	GetActiveHoursForWeekday(ctx context.Context, weekday int) (*domain.BusinessHours, error)
	GetBlockedDate(ctx context.Context, date time.Time) (*domain.BlockedDate, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
