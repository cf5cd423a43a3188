package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	scheduleRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/schedule"
)

// UseCase use case расчёта доступных слотов на дату.
// Чтение без блокировок: список может устареть к моменту коммита записи,
// поэтому create_appointment перепроверяет пересечения сам.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}

	// 2. Полностью заблокированная дата - пустой список, рабочие часы
	// не смотрим
	_, err := uc.scheduleRepo.GetBlockedDate(ctx, req.Date)
	if err == nil {
		uc.logger.Info("GetAvailability: date %s is blocked", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}
	if !errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
		uc.logger.Error("GetAvailability: failed to check blocked date: %v", err)
		return nil, fmt.Errorf("%w: failed to check blocked date: %v", ErrInternal, err)
	}

	// 3. Рабочие часы на день недели (0=воскресенье)
	weekday := domain.StoredWeekday(req.Date)
	hours, err := uc.scheduleRepo.GetActiveHoursForWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
			uc.logger.Info("GetAvailability: no active business hours for weekday=%d", weekday)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailability: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 4. Длительность услуги
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.HasValidDuration() {
		uc.logger.Error("GetAvailability: service id=%d has invalid duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has non-positive duration", ErrInternal)
	}

	// 5. Активные записи на дату
	appointments, err := uc.appointmentRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерация слотов с флагами доступности
	slots, err := generateSlots(hours, service.DurationMinutes, appointments)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
