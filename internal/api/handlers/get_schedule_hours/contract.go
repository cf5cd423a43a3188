package get_schedule_hours

import (
	"context"

	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListHours(ctx context.Context) (*models.BusinessHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
