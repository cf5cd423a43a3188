package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	scheduleRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/schedule"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, _ time.Time, _ bool) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	hours       *domain.BusinessHours
	blockedDate *domain.BlockedDate
}

func (f *fakeScheduleRepo) GetActiveHoursForWeekday(_ context.Context, _ int) (*domain.BusinessHours, error) {
	if f.hours == nil {
		return nil, scheduleRepo.ErrHoursNotFound
	}
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetBlockedDate(_ context.Context, _ time.Time) (*domain.BlockedDate, error) {
	if f.blockedDate == nil {
		return nil, scheduleRepo.ErrBlockedDateNotFound
	}
	return f.blockedDate, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-03-16") // понедельник
	require.NoError(t, err)
	return date
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			activeAppointment("10:00:00", "11:00:00"),
		}},
		&fakeScheduleRepo{hours: workingHours("09:00:00", "12:00:00")},
		&fakeCatalogRepo{service: &domain.Service{ID: 1, Name: "Стрижка", DurationMinutes: 60}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate(t)})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 5)

	assert.Equal(t, types.TimeString("09:00:00"), resp.Slots[0].Time)
	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[2].Available) // 10:00 занят
}

func TestExecute_BlockedDateReturnsEmpty(t *testing.T) {
	date := testDate(t)
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{
			hours:       workingHours("09:00:00", "12:00:00"),
			blockedDate: &domain.BlockedDate{ID: 1, Date: date},
		},
		&fakeCatalogRepo{service: &domain.Service{ID: 1, DurationMinutes: 60}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoBusinessHoursReturnsEmpty(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{hours: nil},
		&fakeCatalogRepo{service: &domain.Service{ID: 1, DurationMinutes: 60}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate(t)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{hours: workingHours("09:00:00", "12:00:00")},
		&fakeCatalogRepo{service: nil},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate(t)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{hours: workingHours("09:00:00", "12:00:00")},
		&fakeCatalogRepo{service: &domain.Service{ID: 1, DurationMinutes: 60}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate(t)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
