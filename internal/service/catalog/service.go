package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo    CatalogRepository
	identityClient IdentityServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога услуг
func NewService(
	catalogRepo CatalogRepository,
	identityClient IdentityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:    catalogRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// List получает все услуги каталога. Доступно без аутентификации.
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по идентификатору
func (s *Service) GetByID(ctx context.Context, serviceID int64) (*models.ServiceResponse, error) {
	svc, err := s.catalogRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(svc), nil
}

// Create добавляет услугу в каталог. Только администратор.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q by user=%d", req.Name, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateService(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу каталога. Только администратор.
func (s *Service) Update(ctx context.Context, serviceID int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d by user=%d", serviceID, req.UserID)

	if err := s.requireAdmin(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validateService(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", serviceID, err)
		return nil, err
	}

	updated, err := s.catalogRepo.Update(ctx, serviceID, strings.TrimSpace(req.Name), req.Price, req.DurationMinutes, req.Description)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", updated.ID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога. Только администратор.
func (s *Service) Delete(ctx context.Context, serviceID int64, userID int64) error {
	s.logger.Info("Delete: deleting service id=%d by user=%d", serviceID, userID)

	if err := s.requireAdmin(ctx, userID); err != nil {
		return err
	}

	if err := s.catalogRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%d not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%d", serviceID)
	return nil
}

// validateService проверяет бизнес-правила для полей услуги
func validateService(name string, price float64, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
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
