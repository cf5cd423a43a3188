package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	scheduleRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/schedule"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/internal/service/schedule/models"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

type fakeScheduleRepo struct {
	hours   map[int64]*domain.BusinessHours
	blocked map[int64]*domain.BlockedDate
	nextID  int64
}

func (f *fakeScheduleRepo) ListHours(_ context.Context) ([]*domain.BusinessHours, error) {
	var result []*domain.BusinessHours
	for _, h := range f.hours {
		result = append(result, h)
	}
	return result, nil
}

func (f *fakeScheduleRepo) UpdateHours(_ context.Context, id int64, startTime, endTime types.TimeString, active bool) (*domain.BusinessHours, error) {
	h, ok := f.hours[id]
	if !ok {
		return nil, scheduleRepo.ErrHoursNotFound
	}
	h.StartTime = startTime
	h.EndTime = endTime
	h.Active = active
	return h, nil
}

func (f *fakeScheduleRepo) ListBlockedDates(_ context.Context) ([]*domain.BlockedDate, error) {
	var result []*domain.BlockedDate
	for _, b := range f.blocked {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeScheduleRepo) CreateBlockedDate(_ context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	for _, b := range f.blocked {
		if b.Date.Equal(blocked.Date) {
			return nil, scheduleRepo.ErrDateAlreadyBlocked
		}
	}
	f.nextID++
	created := *blocked
	created.ID = f.nextID
	f.blocked[created.ID] = &created
	return &created, nil
}

func (f *fakeScheduleRepo) DeleteBlockedDate(_ context.Context, id int64) error {
	if _, ok := f.blocked[id]; !ok {
		return scheduleRepo.ErrBlockedDateNotFound
	}
	delete(f.blocked, id)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	adminID = int64(1)
	userID  = int64(7)
)

func newTestService() (*Service, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{
		hours: map[int64]*domain.BusinessHours{
			1: {ID: 1, Weekday: 1, StartTime: "09:00:00", EndTime: "18:00:00", Active: true},
		},
		blocked: map[int64]*domain.BlockedDate{},
	}

	identity := &fakeIdentityClient{
		users: map[int64]*identityClient.User{
			adminID: {ID: adminID, Username: "admin", Level: identityClient.LevelAdmin},
			userID:  {ID: userID, Username: "user", Level: identityClient.LevelUser},
		},
	}

	return NewService(repo, identity, nopLogger{}), repo
}

func TestUpdateHours_AdminOnly(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateHours(context.Background(), 1, &models.UpdateHoursRequest{
		UserID:    userID,
		StartTime: "10:00",
		EndTime:   "17:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.UpdateHours(context.Background(), 1, &models.UpdateHoursRequest{
		UserID:    adminID,
		StartTime: "10:00",
		EndTime:   "17:00",
		Active:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", resp.StartTime)
	assert.Equal(t, "17:00:00", resp.EndTime)
}

func TestUpdateHours_IntervalValidation(t *testing.T) {
	svc, _ := newTestService()

	// Начало не раньше конца
	_, err := svc.UpdateHours(context.Background(), 1, &models.UpdateHoursRequest{
		UserID:    adminID,
		StartTime: "18:00",
		EndTime:   "09:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateHours(context.Background(), 1, &models.UpdateHoursRequest{
		UserID:    adminID,
		StartTime: "09:00",
		EndTime:   "09:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateHours(context.Background(), 1, &models.UpdateHoursRequest{
		UserID:    adminID,
		StartTime: "garbage",
		EndTime:   "18:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateHours_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateHours(context.Background(), 99, &models.UpdateHoursRequest{
		UserID:    adminID,
		StartTime: "09:00",
		EndTime:   "18:00",
		Active:    true,
	})
	assert.ErrorIs(t, err, ErrHoursNotFound)
}

func TestCreateBlockedDate(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.CreateBlockedDate(context.Background(), &models.CreateBlockedDateRequest{
		UserID: adminID,
		Date:   "2026-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", resp.Date)

	// Повторная блокировка той же даты
	_, err = svc.CreateBlockedDate(context.Background(), &models.CreateBlockedDateRequest{
		UserID: adminID,
		Date:   "2026-05-01",
	})
	assert.ErrorIs(t, err, ErrDateAlreadyBlocked)

	// Не администратор
	_, err = svc.CreateBlockedDate(context.Background(), &models.CreateBlockedDateRequest{
		UserID: userID,
		Date:   "2026-05-02",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Некорректная дата
	_, err = svc.CreateBlockedDate(context.Background(), &models.CreateBlockedDateRequest{
		UserID: adminID,
		Date:   "01.05.2026",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteBlockedDate(t *testing.T) {
	svc, repo := newTestService()
	repo.blocked[5] = &domain.BlockedDate{
		ID:   5,
		Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.ErrorIs(t, svc.DeleteBlockedDate(context.Background(), 5, userID), ErrAccessDenied)

	require.NoError(t, svc.DeleteBlockedDate(context.Background(), 5, adminID))
	assert.ErrorIs(t, svc.DeleteBlockedDate(context.Background(), 5, adminID), ErrBlockedDateNotFound)
}
