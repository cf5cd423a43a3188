package get_availability

import (
	"time"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступности
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для расчёта слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID int64     // ID услуги
	Slots     []Slot    // Все кандидаты-слоты с флагом доступности
}

// Slot кандидат на бронирование. Список advisory: ничего не резервирует,
// доступность перепроверяется при коммите записи.
type Slot struct {
	Time      types.TimeString // Время начала слота
	Available bool             // Свободен ли интервал [Time, Time+duration)
}
