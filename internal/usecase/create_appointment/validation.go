package create_appointment

import (
	"fmt"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for field, value := range map[string]*string{
		"customerName":  req.CustomerName,
		"customerPhone": req.CustomerPhone,
		"customerEmail": req.CustomerEmail,
	} {
		if value != nil && len(*value) > domain.MaxCustomerFieldLength {
			return fmt.Errorf("%w: %s must not exceed %d characters", ErrInvalidInput, field, domain.MaxCustomerFieldLength)
		}
	}

	return nil
}
