package update_business_hours

import (
	"context"

	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateHours(ctx context.Context, hoursID int64, req *models.UpdateHoursRequest) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
