package create_appointment

import (
	"time"

	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID аутентифицированного пользователя
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала

	// Контактные поля (опционально; пустые заполняются из профиля)
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string

	Notes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	UserID    int64            // ID владельца
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания (start + duration услуги)
	Status    string           // Статус записи

	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
