package update_service

import (
	"github.com/avikez/SAS-AppointmentService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(userID int64) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		UserID:          userID,
		Name:            r.Name,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Description:     r.Description,
	}
}
