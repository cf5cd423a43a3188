package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/create_appointment"
	createBlockedDateHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/create_blocked_date"
	createServiceHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/create_service"
	deleteBlockedDateHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/delete_blocked_date"
	deleteServiceHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/delete_service"
	getAppointmentHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/get_availability"
	getScheduleHoursHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/get_schedule_hours"
	listAppointmentsHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/list_blocked_dates"
	listServicesHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/list_services"
	updateAppointmentStatusHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/update_appointment_status"
	updateBusinessHoursHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/update_business_hours"
	updateServiceHandler "github.com/avikez/SAS-AppointmentService/internal/api/handlers/update_service"
	"github.com/avikez/SAS-AppointmentService/internal/api/middleware"
	"github.com/avikez/SAS-AppointmentService/internal/config"
	appointmentRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/appointment"
	catalogRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/catalog"
	scheduleRepo "github.com/avikez/SAS-AppointmentService/internal/infra/storage/schedule"
	identityServiceClient "github.com/avikez/SAS-AppointmentService/internal/integrations/identityservice"
	appointmentsService "github.com/avikez/SAS-AppointmentService/internal/service/appointments"
	catalogService "github.com/avikez/SAS-AppointmentService/internal/service/catalog"
	scheduleService "github.com/avikez/SAS-AppointmentService/internal/service/schedule"
	createAppointmentUC "github.com/avikez/SAS-AppointmentService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/avikez/SAS-AppointmentService/internal/usecase/get_availability"
	"github.com/avikez/SAS-AppointmentService/pkg/dbmetrics"
	"github.com/avikez/SAS-AppointmentService/pkg/logger"
	"github.com/avikez/SAS-AppointmentService/pkg/metrics"
	"github.com/avikez/SAS-AppointmentService/pkg/simpletxmanager"
	"github.com/avikez/SAS-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SAS-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (IdentityService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисе записей)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		identityClient,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		identityClient,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		identityClient,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		identityClient,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getScheduleHours := getScheduleHoursHandler.NewHandler(scheduleSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(scheduleSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(scheduleSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(scheduleSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступность слотов на дату
	api.HandleFunc("/services/{serviceId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Недельное расписание и заблокированные даты
	api.HandleFunc("/schedule/hours", getScheduleHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей (пользователь - свои, администратор - все)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Изменение статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог услуг (для администраторов) ---
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание (для администраторов) ---
	protected.HandleFunc("/schedule/hours/{hoursId}",
		updateBusinessHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/blocked-dates",
		createBlockedDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blocked-dates/{blockedDateId}",
		deleteBlockedDate.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
