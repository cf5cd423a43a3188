package list_blocked_dates

import (
	"context"

	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
