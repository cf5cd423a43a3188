package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikez/SAS-AppointmentService/internal/domain"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	identityClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	"github.com/avikez/SAS-AppointmentService/pkg/ptr"
	"github.com/avikez/SAS-AppointmentService/pkg/types"
)

// fakeAppointmentRepo хранит записи в памяти. Потокобезопасность
// обеспечивает fakeTxManager, сериализующий транзакционные блоки.
type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time, includeCancelled bool) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if !appt.Date.Equal(date) {
			continue
		}
		if !includeCancelled && appt.Status.IsCancelled() {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
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

type fakeIdentityClient struct {
	user *identityClient.User
}

func (f *fakeIdentityClient) GetUser(_ context.Context, _ int64) (*identityClient.User, error) {
	if f.user == nil {
		return nil, identityClient.ErrUserNotFound
	}
	return f.user, nil
}

// fakeTxManager исполняет транзакционные блоки под мьютексом, имитируя
// взаимное исключение сериализуемых транзакций над одной датой
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

func testService() *domain.Service {
	return &domain.Service{
		ID:              1,
		Name:            "Стрижка",
		Price:           1500,
		DurationMinutes: 60,
	}
}

func testUser() *identityClient.User {
	return &identityClient.User{
		ID:       7,
		Name:     ptr.Ptr("Анна"),
		Username: "anna",
		Email:    ptr.Ptr("anna@example.com"),
		Phone:    ptr.Ptr("+79990001122"),
		Level:    identityClient.LevelUser,
	}
}

func testRequest(t *testing.T, start string) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-03-16")
	require.NoError(t, err)

	startTime, err := types.NewTimeStringFromString(start)
	require.NoError(t, err)

	return &Request{
		UserID:    7,
		ServiceID: 1,
		Date:      date,
		StartTime: startTime,
	}
}

func newTestUseCase(repo *fakeAppointmentRepo) *UseCase {
	return NewUseCase(
		repo,
		&fakeCatalogRepo{service: testService()},
		&fakeIdentityClient{user: testUser()},
		&fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), testRequest(t, "10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, types.TimeString("10:00:00"), resp.StartTime)
	// Время окончания вычислено на сервере из длительности услуги
	assert.Equal(t, types.TimeString("11:00:00"), resp.EndTime)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
}

func TestExecute_FillsContactsFromProfile(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	// Телефон передан явно, имя и email заполняются из профиля
	req := testRequest(t, "10:00")
	req.CustomerPhone = ptr.Ptr("+70000000000")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Анна", *resp.CustomerName)
	require.NotNil(t, resp.CustomerPhone)
	assert.Equal(t, "+70000000000", *resp.CustomerPhone)
	require.NotNil(t, resp.CustomerEmail)
	assert.Equal(t, "anna@example.com", *resp.CustomerEmail)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), testRequest(t, "10:00"))
	require.NoError(t, err)

	// Пересекающийся интервал отклоняется
	_, err = uc.Execute(context.Background(), testRequest(t, "10:30"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Граничащий интервал проходит
	_, err = uc.Execute(context.Background(), testRequest(t, "11:00"))
	assert.NoError(t, err)
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), testRequest(t, "10:00"))
	require.NoError(t, err)

	// Отменяем созданную запись напрямую в репозитории
	repo.appointments[resp.ID-1].Status = domain.StatusCancelled

	_, err = uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.NoError(t, err)
}

func TestExecute_PastMidnight(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), testRequest(t, "23:30"))
	assert.ErrorIs(t, err, ErrPastMidnight)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeCatalogRepo{service: nil},
		&fakeIdentityClient{user: testUser()},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeCatalogRepo{service: testService()},
		&fakeIdentityClient{user: nil},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_ConcurrentCommitsExactlyOneWins(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(repo)

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), testRequest(t, "10:00"))
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one commit must win")
	assert.Equal(t, workers-1, conflicted)
	assert.Len(t, repo.appointments, 1)
}

func TestValidateRequest(t *testing.T) {
	base := func() *Request { return testRequest(t, "10:00") }

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateRequest(base()))
	})

	t.Run("non-positive ids", func(t *testing.T) {
		req := base()
		req.UserID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

		req = base()
		req.ServiceID = -1
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("missing date and time", func(t *testing.T) {
		req := base()
		req.Date = time.Time{}
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

		req = base()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("oversized fields", func(t *testing.T) {
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}

		req := base()
		req.Notes = ptr.Ptr(string(long))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}
