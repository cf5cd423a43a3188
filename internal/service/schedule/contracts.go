package schedule

import (
	"context"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	"github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// ScheduleRepository интерфейс репозитория календарных правил
type ScheduleRepository interface {
	ListHours(ctx context.Context) ([]*domain.BusinessHours, error)
	UpdateHours(ctx context.Context, id int64, startTime, endTime types.TimeString, active bool) (*domain.BusinessHours, error)
	ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, id int64) error
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
