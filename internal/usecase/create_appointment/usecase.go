package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
)

// UseCase use case создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	identityClient  IdentityServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	identityClient IdentityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк даты (FOR UPDATE в репозитории). Это
// закрывает гонку между запросом доступности и коммитом: из двух
// конкурирующих коммитов на пересекающиеся интервалы одной даты ровно один
// успевает, второй получает ErrSlotConflict. Любая ошибка внутри блока
// откатывает транзакцию целиком - частично записанная строка невозможна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга и её длительность
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.HasValidDuration() {
		uc.logger.Error("CreateAppointment: service id=%d has invalid duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service has non-positive duration", ErrInternal)
	}

	// 3. Время окончания считается на сервере и никогда не берется из
	// запроса. Выход за пределы суток - ошибка валидации, а не перенос.
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: end time computation failed: start=%s, duration=%d: %v",
			req.StartTime, service.DurationMinutes, err)
		return nil, ErrPastMidnight
	}

	// 4. Профиль вызывающего для заполнения контактных полей
	user, err := uc.identityClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные записи на дату с блокировкой строк (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Перепроверка пересечений на момент коммита. Ответ
		// get_availability к этому времени мог устареть.
		for _, appt := range appointments {
			if !appt.CountsForOverlap() {
				continue
			}
			if domain.Overlaps(req.StartTime, endTime, appt.StartTime, appt.EndTime) {
				uc.logger.Warn("CreateAppointment: slot conflict with appointment id=%d (%s-%s)",
					appt.ID, appt.StartTime, appt.EndTime)
				return ErrSlotConflict
			}
		}

		// 5.3. Создаем запись: статус pending, владелец - вызывающий,
		// недостающие контакты из профиля, явно переданные не перетираются
		appointment := &domain.Appointment{
			UserID:        req.UserID,
			ServiceID:     req.ServiceID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			Status:        domain.StatusPending,
			CustomerName:  fillContactField(req.CustomerName, namePtr(user)),
			CustomerPhone: fillContactField(req.CustomerPhone, user.Phone),
			CustomerEmail: fillContactField(req.CustomerEmail, user.Email),
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			Notes:        req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		ServiceID:     result.ServiceID,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		CustomerEmail: result.CustomerEmail,
		ServiceName:   result.ServiceName,
		ServicePrice:  result.ServicePrice,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// fillContactField возвращает явно переданное значение, если оно непустое,
// иначе значение из профиля
func fillContactField(supplied, fromProfile *string) *string {
	if supplied != nil && *supplied != "" {
		return supplied
	}
	return fromProfile
}

// namePtr возвращает отображаемое имя пользователя как *string
func namePtr(user *identityClient.User) *string {
	name := user.DisplayName()
	if name == "" {
		return nil
	}
	return &name
}
