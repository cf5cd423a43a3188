package update_appointment_status

import (
	"github.com/avikez/SAS-AppointmentService/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.SetStatusRequest {
	return &models.SetStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
