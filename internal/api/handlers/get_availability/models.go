package get_availability

import (
	getAvailability "github.com/avikez/SAS-AppointmentService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) []*SlotResponse {
	slots := make([]*SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, &SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		})
	}
	return slots
}
