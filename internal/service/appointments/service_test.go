package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	appointmentRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/appointment"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/internal/service/appointments/models"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	byID map[int64]*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.byID {
		if filter.UserID != nil && appt.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		if !filter.IncludeCancelled && appt.Status.IsCancelled() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

type fakeIdentityClient struct {
	users map[int64]*identityClient.User
}

func (f *fakeIdentityClient) GetUser(_ context.Context, userID int64) (*identityClient.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, identityClient.ErrUserNotFound
	}
	return user, nil
}

// fakeTxManager сериализует переданные функции через мьютекс,
// имитируя взаимное исключение сериализуемых транзакций
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	ownerID = int64(7)
	otherID = int64(8)
	adminID = int64(1)
)

func newTestService(status domain.AppointmentStatus) (*Service, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{
		byID: map[int64]*domain.Appointment{
			1: {
				ID:        1,
				UserID:    ownerID,
				ServiceID: 1,
				Date:      time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
				StartTime: types.TimeString("10:00:00"),
				EndTime:   types.TimeString("11:00:00"),
				Status:    status,
			},
		},
	}

	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			ownerID: {ID: ownerID, Username: "owner", Level: identityClient.LevelUser},
			otherID: {ID: otherID, Username: "other", Level: identityClient.LevelUser},
			adminID: {ID: adminID, Username: "admin", Level: identityClient.LevelAdmin},
		},
	}

	return NewService(repo, identity, &fakeTxManager{}, nopLogger{}), repo
}

func TestGetByID_OwnerAndAdminAllowed(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	resp, err := svc.GetByID(context.Background(), 1, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, adminID)
	assert.NoError(t, err)
}

func TestGetByID_OtherUserForbidden(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.GetByID(context.Background(), 1, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.GetByID(context.Background(), 99, ownerID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestSetStatus_AdminTransitions(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	resp, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: adminID,
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: adminID,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	// Завершённую запись администратор всё ещё может отменить
	resp, err = svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: adminID,
		Status: "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestSetStatus_CancelledIsTerminal(t *testing.T) {
	svc, _ := newTestService(domain.StatusCancelled)

	for _, target := range []string{"pending", "confirmed", "completed", "cancelled"} {
		_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
			UserID: adminID,
			Status: target,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition, "cancelled -> %s must be rejected", target)
	}
}

func TestSetStatus_SkippingConfirmationRejected(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: adminID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatus_OwnerMayOnlyCancel(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	// Самостоятельное подтверждение запрещено
	_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: ownerID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Отмена своей записи разрешена
	resp, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: ownerID,
		Status: "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestSetStatus_OtherUserForbidden(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: otherID,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending)

	_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
		UserID: adminID,
		Status: "done",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_ConcurrentTransitionsOnlyOneWins(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending)

	// Несколько администраторов одновременно подтверждают одну запись:
	// проверка перехода и обновление выполняются под одной транзакцией,
	// поэтому подтверждение применяется ровно один раз
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SetStatus(context.Background(), 1, &models.SetStatusRequest{
				UserID: adminID,
				Status: "confirmed",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrInvalidTransition)
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, rejected)
	assert.Equal(t, domain.StatusConfirmed, repo.byID[1].Status)
}

func TestList_UserSeesOnlyOwn(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending)
	repo.byID[2] = &domain.Appointment{ID: 2, UserID: otherID, Status: domain.StatusPending}

	resp, err := svc.List(context.Background(), &models.ListRequest{UserID: ownerID})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, ownerID, resp.Appointments[0].UserID)
}

func TestList_AdminSeesAll(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending)
	repo.byID[2] = &domain.Appointment{ID: 2, UserID: otherID, Status: domain.StatusCancelled}

	// Администратор видит все записи, включая отменённые
	resp, err := svc.List(context.Background(), &models.ListRequest{UserID: adminID})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

func TestList_StatusFilter(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending)
	repo.byID[2] = &domain.Appointment{ID: 2, UserID: ownerID, Status: domain.StatusConfirmed}

	status := "confirmed"
	resp, err := svc.List(context.Background(), &models.ListRequest{UserID: ownerID, Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "confirmed", resp.Appointments[0].Status)

	bad := "nope"
	_, err = svc.List(context.Background(), &models.ListRequest{UserID: ownerID, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
