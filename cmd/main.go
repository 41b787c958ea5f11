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

	cancelAppointmentHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/create_appointment"
	createContactMessageHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/create_contact_message"
	createQuoteHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/create_quote"
	createVehicleHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/create_vehicle"
	deleteAppointmentHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/delete_appointment"
	deleteMessageHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/delete_message"
	deleteQuoteHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/delete_quote"
	deleteVehicleHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/delete_vehicle"
	getAdminAppointmentsHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_admin_appointments"
	getAdminMessagesHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_admin_messages"
	getAdminQuotesHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_admin_quotes"
	getAppointmentHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_available_slots"
	getMyAppointmentsHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_my_appointments"
	getVehiclesHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/get_vehicles"
	loginHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/login"
	registerHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/register"
	updateAppointmentHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/update_appointment_status"
	updateMessageStatusHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/update_message_status"
	updateQuoteStatusHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/update_quote_status"
	updateVehicleHandler "github.com/m-ilin/PAG-AppointmentService/internal/api/handlers/update_vehicle"
	"github.com/m-ilin/PAG-AppointmentService/internal/api/middleware"
	"github.com/m-ilin/PAG-AppointmentService/internal/auth"
	"github.com/m-ilin/PAG-AppointmentService/internal/config"
	accountRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/account"
	appointmentRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/appointment"
	contactRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/contact"
	quoteRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/quote"
	vehicleRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/vehicle"
	accountsService "github.com/m-ilin/PAG-AppointmentService/internal/service/accounts"
	appointmentsService "github.com/m-ilin/PAG-AppointmentService/internal/service/appointments"
	inboxService "github.com/m-ilin/PAG-AppointmentService/internal/service/inbox"
	vehiclesService "github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles"
	createAppointmentUC "github.com/m-ilin/PAG-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m-ilin/PAG-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m-ilin/PAG-AppointmentService/pkg/dbmetrics"
	"github.com/m-ilin/PAG-AppointmentService/pkg/logger"
	"github.com/m-ilin/PAG-AppointmentService/pkg/metrics"
	"github.com/m-ilin/PAG-AppointmentService/pkg/simpletxmanager"
	"github.com/m-ilin/PAG-AppointmentService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PAG-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Repositories and transaction manager, with or without metrics
	var (
		appointmentRepository *appointmentRepo.Repository
		accountRepository     *accountRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		quoteRepository       *quoteRepo.Repository
		contactRepository     *contactRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		quoteRepository = quoteRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		quoteRepository = quoteRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	accountSvc := accountsService.NewService(accountRepository, tokenManager, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, log)
	inboxSvc := inboxService.NewService(quoteRepository, contactRepository, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		accountRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	register := registerHandler.NewHandler(accountSvc, log)
	login := loginHandler.NewHandler(accountSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	getVehicles := getVehiclesHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	createQuote := createQuoteHandler.NewHandler(inboxSvc, log)
	getAdminQuotes := getAdminQuotesHandler.NewHandler(inboxSvc, log)
	updateQuoteStatus := updateQuoteStatusHandler.NewHandler(inboxSvc, log)
	deleteQuote := deleteQuoteHandler.NewHandler(inboxSvc, log)
	createContactMessage := createContactMessageHandler.NewHandler(inboxSvc, log)
	getAdminMessages := getAdminMessagesHandler.NewHandler(inboxSvc, log)
	updateMessageStatus := updateMessageStatusHandler.NewHandler(inboxSvc, log)
	deleteMessage := deleteMessageHandler.NewHandler(inboxSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", createContactMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Booking accepts both anonymous and authenticated submissions
	booking := api.PathPrefix("").Subrouter()
	booking.Use(middleware.OptionalAuth(tokenManager, log))
	booking.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// CUSTOMER ROUTES (require a valid token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	protected.HandleFunc("/me/appointments", getMyAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/me/vehicles", getVehicles.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/vehicles", createVehicle.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/me/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/me/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (require the admin role)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(tokenManager, log))

	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/quotes", getAdminQuotes.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/quotes/{quoteId}/status", updateQuoteStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/quotes/{quoteId}", deleteQuote.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/messages", getAdminMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{messageId}/status", updateMessageStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/messages/{messageId}", deleteMessage.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
