package update_service

import (
	"context"

	"github.com/avikez/SAS-AppointmentService/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, serviceID int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
