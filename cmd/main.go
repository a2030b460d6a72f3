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

	associateCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/associate_court"
	cancelReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_reservation"
	confirmGuestHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/confirm_guest"
	createReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/delete_reservation"
	getClientReservationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_client_reservations"
	getFreeSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_free_slots"
	getGuestCountsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_guest_counts"
	getGuestParticipationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_guest_participations"
	getPersonCredentialsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_person_credentials"
	getReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation"
	getReservationCourtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation_courts"
	getReservationPaymentsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation_payments"
	inviteGuestHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/invite_guest"
	issueCredentialHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/issue_credential"
	listCredentialsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_credentials"
	listGuestsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_guests"
	listReservationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_reservations"
	notifyGuestHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/notify_guest"
	quoteCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/quote_court"
	reconcilePaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/reconcile_payment"
	recordAttendanceHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/record_attendance"
	recordPaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/record_payment"
	removeCourtHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/remove_court"
	removeGuestHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/remove_guest"
	updateParticipationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_participation"
	updateReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_reservation_status"
	validateCredentialHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/validate_credential"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	associationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/association"
	credentialRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/credential"
	participationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/participation"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	facilityServiceClient "github.com/m04kA/SMC-CourtService/internal/integrations/facilityservice"
	personServiceClient "github.com/m04kA/SMC-CourtService/internal/integrations/personservice"
	qrEncoderClient "github.com/m04kA/SMC-CourtService/internal/integrations/qrencoder"
	associationsService "github.com/m04kA/SMC-CourtService/internal/service/associations"
	credentialsService "github.com/m04kA/SMC-CourtService/internal/service/credentials"
	guestsService "github.com/m04kA/SMC-CourtService/internal/service/guests"
	reservationsService "github.com/m04kA/SMC-CourtService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	getFreeSlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_free_slots"
	reconcilePaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/reconcile_payment"
	recordPaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/record_payment"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
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

	// Инициализируем интеграционных клиентов
	facilityClient := facilityServiceClient.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	personClient := personServiceClient.NewClient(
		cfg.PersonService.URL,
		time.Duration(cfg.PersonService.Timeout)*time.Second,
		log,
	)
	qrEncoder := qrEncoderClient.NewClient(
		cfg.QREncoder.URL,
		time.Duration(cfg.QREncoder.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (FacilityService=%s, PersonService=%s, QREncoder=%s)",
		cfg.FacilityService.URL, cfg.PersonService.URL, cfg.QREncoder.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository   *reservationRepo.Repository
		associationRepository   *associationRepo.Repository
		participationRepository *participationRepo.Repository
		paymentRepository       *paymentRepo.Repository
		credentialRepository    *credentialRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		associationRepository = associationRepo.NewRepository(wrappedDB)
		participationRepository = participationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		credentialRepository = credentialRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		associationRepository = associationRepo.NewRepository(db)
		participationRepository = participationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		credentialRepository = credentialRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	credentialSvc := credentialsService.NewService(
		reservationRepository,
		associationRepository,
		participationRepository,
		credentialRepository,
		facilityClient,
		personClient,
		qrEncoder,
		txMgr,
		log,
	)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		associationRepository,
		credentialRepository,
		personClient,
		txMgr,
		log,
	)
	associationSvc := associationsService.NewService(
		reservationRepository,
		associationRepository,
		facilityClient,
		txMgr,
		log,
	)
	guestSvc := guestsService.NewService(
		reservationRepository,
		associationRepository,
		participationRepository,
		personClient,
		facilityClient,
		credentialSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		associationRepository,
		facilityClient,
		personClient,
		txMgr,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(
		reservationRepository,
		facilityClient,
		log,
	)
	reconcilePaymentUseCase := reconcilePaymentUC.NewUseCase(
		reservationRepository,
		associationRepository,
		paymentRepository,
		participationRepository,
		credentialSvc,
		txMgr,
		log,
	)
	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		reservationRepository,
		paymentRepository,
		reconcilePaymentUseCase,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	associateCourt := associateCourtHandler.NewHandler(associationSvc, log)
	getReservationCourts := getReservationCourtsHandler.NewHandler(associationSvc, log)
	quoteCourt := quoteCourtHandler.NewHandler(associationSvc, log)
	removeCourt := removeCourtHandler.NewHandler(associationSvc, log)
	inviteGuest := inviteGuestHandler.NewHandler(guestSvc, log)
	listGuests := listGuestsHandler.NewHandler(guestSvc, log)
	getGuestCounts := getGuestCountsHandler.NewHandler(guestSvc, log)
	confirmGuest := confirmGuestHandler.NewHandler(guestSvc, log)
	recordAttendance := recordAttendanceHandler.NewHandler(guestSvc, log)
	updateParticipation := updateParticipationHandler.NewHandler(guestSvc, log)
	notifyGuest := notifyGuestHandler.NewHandler(guestSvc, log)
	removeGuest := removeGuestHandler.NewHandler(guestSvc, log)
	getGuestParticipations := getGuestParticipationsHandler.NewHandler(guestSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(recordPaymentUseCase, log)
	getReservationPayments := getReservationPaymentsHandler.NewHandler(recordPaymentUseCase, log)
	reconcilePayment := reconcilePaymentHandler.NewHandler(reconcilePaymentUseCase, log)
	issueCredential := issueCredentialHandler.NewHandler(credentialSvc, log)
	listCredentials := listCredentialsHandler.NewHandler(credentialSvc, log)
	getPersonCredentials := getPersonCredentialsHandler.NewHandler(credentialSvc, log)
	validateCredential := validateCredentialHandler.NewHandler(credentialSvc, log)

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

	// Свободные слоты корта на дату
	api.HandleFunc("/courts/{courtId}/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Проверка пропуска по коду (сканер на входе)
	api.HandleFunc("/credentials/{code}/validate", validateCredential.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)

	// --- Корты бронирования ---
	protected.HandleFunc("/reservations/{reservationId}/courts", associateCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/courts", getReservationCourts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/courts/quote", quoteCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/courts/{courtId}/disciplines/{disciplineId}",
		removeCourt.Handle).Methods(http.MethodDelete)

	// --- Гости бронирования ---
	protected.HandleFunc("/reservations/{reservationId}/guests", inviteGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/guests", listGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/guests/counts", getGuestCounts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/guests/{guestId}/confirm", confirmGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/guests/{guestId}/attendance", recordAttendance.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/guests/{guestId}/notify", notifyGuest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/guests/{guestId}", updateParticipation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/guests/{guestId}", removeGuest.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/guests/{guestId}/participations", getGuestParticipations.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/reservations/{reservationId}/payments", recordPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/payments", getReservationPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/payments/reconcile", reconcilePayment.Handle).Methods(http.MethodPost)

	// --- Пропуска ---
	protected.HandleFunc("/reservations/{reservationId}/credentials", issueCredential.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/credentials", listCredentials.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/persons/{personId}/credentials", getPersonCredentials.Handle).Methods(http.MethodGet)

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
