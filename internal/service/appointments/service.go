package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	appointmentRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/appointment"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей и управления их жизненным циклом
type Service struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Пользователь видит только свою запись, администратор - любую.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appt.IsOwnedBy(userID) {
		caller, err := s.getCaller(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !caller.IsAdmin() {
			s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// List получает список записей.
// Администратор видит все записи (сначала новые), пользователь - свои.
// Отменённые записи включаются: список - история, а не календарь.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d", req.UserID)

	caller, err := s.getCaller(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	filter := domain.AppointmentsFilter{IncludeCancelled: true}
	if !caller.IsAdmin() {
		filter.UserID = &req.UserID
	}
	if req.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	appts, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%d", len(appts), req.UserID)
	return models.FromDomainAppointmentList(appts), nil
}

// SetStatus переводит запись в новый статус.
//
// Правила:
//   - администратор может применить любой переход из таблицы переходов;
//   - обычный пользователь действует только над своей записью и только в
//     сторону cancelled (самостоятельное подтверждение и завершение
//     запрещены);
//   - переход вне таблицы (включая любой выход из терминального статуса)
//     отклоняется как ErrInvalidTransition.
func (s *Service) SetStatus(ctx context.Context, appointmentID int64, req *models.SetStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("SetStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	newStatus, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("SetStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return nil, ErrInvalidStatus
	}

	// Профиль вызывающего запрашивается до транзакции: внешний вызов
	// не должен удерживать блокировку строки
	caller, err := s.getCaller(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Appointment

	// Проверка перехода и запись нового статуса в одной сериализуемой
	// транзакции: строка блокируется (FOR UPDATE), конкурирующий перевод
	// из того же статуса увидит уже применённый переход
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("SetStatus: appointment id=%d not found", appointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("SetStatus: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}

		if !caller.IsAdmin() {
			if !appt.IsOwnedBy(req.UserID) {
				s.logger.Warn("SetStatus: access denied for user=%d to appointment id=%d", req.UserID, appointmentID)
				return ErrAccessDenied
			}
			if newStatus != domain.StatusCancelled {
				s.logger.Warn("SetStatus: user=%d may only cancel, attempted status=%s", req.UserID, newStatus)
				return ErrAccessDenied
			}
		}

		if !appt.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("SetStatus: invalid transition %s -> %s for appointment id=%d",
				appt.Status, newStatus, appointmentID)
			return ErrInvalidTransition
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, appointmentID, newStatus); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("SetStatus: appointment id=%d not found during update", appointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("SetStatus: repository error for appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.appointmentRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			s.logger.Error("SetStatus: failed to reload appointment id=%d: %v", appointmentID, err)
			return fmt.Errorf("%w: SetStatus - failed to reload appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return models.FromDomainAppointment(updated), nil
}

// getCaller получает профиль вызывающего из IdentityService
func (s *Service) getCaller(ctx context.Context, userID int64) (*identityClient.User, error) {
	user, err := s.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			s.logger.Warn("getCaller: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("getCaller: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: getCaller - failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}
