package create_blocked_date

import (
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
)

// CreateBlockedDateRequest HTTP request model
type CreateBlockedDateRequest struct {
	Date   string  `json:"date"` // "2026-01-01"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockedDateRequest) ToServiceRequest(userID int64) *models.CreateBlockedDateRequest {
	return &models.CreateBlockedDateRequest{
		UserID: userID,
		Date:   r.Date,
		Reason: r.Reason,
	}
}
