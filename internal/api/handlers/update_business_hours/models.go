package update_business_hours

import (
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
)

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
	Active    bool   `json:"active"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateHoursRequest) ToServiceRequest(userID int64) *models.UpdateHoursRequest {
	return &models.UpdateHoursRequest{
		UserID:    userID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Active:    r.Active,
	}
}
