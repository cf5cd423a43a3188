package get_availability

import (
	"github.com/avikez/SAS-AppointmentService/internal/domain"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// generateSlots генерирует кандидатов начала слота в пределах рабочих часов
// и помечает доступность каждого по существующим записям.
//
// Кандидаты идут от начала рабочего окна с фиксированным шагом
// domain.SlotStepMinutes, пока слот целиком помещается в окно:
// start + duration <= конец окна. Слот, ровно заполняющий окно, допустим;
// выходящий за окно хотя бы на минуту - нет. Если длительность услуги больше
// окна, цикл не выполняется ни разу и список пуст.
func generateSlots(
	hours *domain.BusinessHours,
	durationMinutes int,
	appointments []*domain.Appointment,
) ([]Slot, error) {
	startMins, err := hours.StartTime.Minutes()
	if err != nil {
		return nil, err
	}

	endMins, err := hours.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0)

	for cur := startMins; cur+durationMinutes <= endMins; cur += domain.SlotStepMinutes {
		slotStart, err := types.NewTimeStringFromMinutes(cur)
		if err != nil {
			return nil, err
		}
		slotEnd, err := types.NewTimeStringFromMinutes(cur + durationMinutes)
		if err != nil {
			return nil, err
		}

		slots = append(slots, Slot{
			Time:      slotStart,
			Available: isSlotFree(slotStart, slotEnd, appointments),
		})
	}

	return slots, nil
}

// isSlotFree проверяет, что слот [slotStart, slotEnd) не пересекается ни с
// одной активной записью. Тест непрерывный по времени, а не по сетке:
// запись, не выровненная по шагу слотов, всё равно блокирует пересекающиеся
// кандидаты. Граничащие интервалы пересечением не считаются.
func isSlotFree(slotStart, slotEnd types.TimeString, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		// Отменённые записи освобождают свой интервал
		if !appt.CountsForOverlap() {
			continue
		}
		if domain.Overlaps(slotStart, slotEnd, appt.StartTime, appt.EndTime) {
			return false
		}
	}
	return true
}
