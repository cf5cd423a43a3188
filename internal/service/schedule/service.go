package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	scheduleRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/schedule"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// Service сервис администрирования календарных правил: недельного
// расписания рабочих часов и заблокированных дат
type Service struct {
	scheduleRepo   ScheduleRepository
	identityClient IdentityServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса календарных правил
func NewService(
	scheduleRepo ScheduleRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// ListHours получает недельное расписание. Доступно без аутентификации -
// клиенты показывают его до выбора слота.
func (s *Service) ListHours(ctx context.Context) (*models.BusinessHoursListResponse, error) {
	hours, err := s.scheduleRepo.ListHours(ctx)
	if err != nil {
		s.logger.Error("ListHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHoursList(hours), nil
}

// UpdateHours обновляет рабочие часы дня недели. Только администратор.
func (s *Service) UpdateHours(ctx context.Context, hoursID int64, req *models.UpdateHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateHours: updating hours id=%d by user=%d", hoursID, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("UpdateHours: invalid startTime=%q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		s.logger.Warn("UpdateHours: invalid endTime=%q: %v", req.EndTime, err)
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		s.logger.Warn("UpdateHours: startTime=%s is not before endTime=%s", startTime, endTime)
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	updated, err := s.scheduleRepo.UpdateHours(ctx, hoursID, startTime, endTime, req.Active)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
			s.logger.Warn("UpdateHours: hours id=%d not found", hoursID)
			return nil, ErrHoursNotFound
		}
		s.logger.Error("UpdateHours: repository error for hours id=%d: %v", hoursID, err)
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHours: successfully updated hours id=%d (weekday=%d, %s-%s, active=%t)",
		updated.ID, updated.Weekday, updated.StartTime, updated.EndTime, updated.Active)
	return models.FromDomainHours(updated), nil
}

// ListBlockedDates получает все заблокированные даты
func (s *Service) ListBlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	blocked, err := s.scheduleRepo.ListBlockedDates(ctx)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedDateList(blocked), nil
}

// CreateBlockedDate блокирует дату целиком. Только администратор.
func (s *Service) CreateBlockedDate(ctx context.Context, req *models.CreateBlockedDateRequest) (*models.BlockedDateResponse, error) {
	s.logger.Info("CreateBlockedDate: blocking date=%s by user=%d", req.Date, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("CreateBlockedDate: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	created, err := s.scheduleRepo.CreateBlockedDate(ctx, &domain.BlockedDate{
		Date:   date,
		Reason: req.Reason,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("CreateBlockedDate: date=%s is already blocked", req.Date)
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("CreateBlockedDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: CreateBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedDate: successfully blocked date=%s (id=%d)", req.Date, created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// DeleteBlockedDate снимает блокировку даты. Только администратор.
func (s *Service) DeleteBlockedDate(ctx context.Context, blockedDateID int64, userID int64) error {
	s.logger.Info("DeleteBlockedDate: deleting blocked date id=%d by user=%d", blockedDateID, userID)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteBlockedDate(ctx, blockedDateID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("DeleteBlockedDate: blocked date id=%d not found", blockedDateID)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("DeleteBlockedDate: repository error for id=%d: %v", blockedDateID, err)
		return fmt.Errorf("%w: DeleteBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlockedDate: successfully deleted blocked date id=%d", blockedDateID)
	return nil
}

// requireAdmin проверяет, что вызывающий - администратор
func (s *Service) requireAdmin(ctx context.Context, userID int64) error {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("requireAdmin: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("requireAdmin: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: requireAdmin - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("requireAdmin: user=%d is not an administrator", userID)
		return ErrAccessDenied
	}

	return nil
}
