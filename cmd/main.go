package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	acceptPaymentHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/accept_payment"
	cancelPaymentHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/cancel_payment"
	deleteBookingHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/delete_booking"
	deletePaymentHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/delete_payment"
	getAvailableTimesHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/get_available_times"
	getBillingSummaryHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/get_billing_summary"
	getBookingsHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/get_bookings"
	getPaymentsHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/get_payments"
	getStaffHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/get_staff"
	selectServicesHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/select_services"
	selectTimeSlotHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/select_time_slot"
	startSessionHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/start_session"
	submitBookingHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/submit_booking"
	updateDetailsHandler "github.com/m04kA/EL-BookingFlow/internal/api/handlers/update_details"
	"github.com/m04kA/EL-BookingFlow/internal/api/middleware"
	"github.com/m04kA/EL-BookingFlow/internal/config"
	"github.com/m04kA/EL-BookingFlow/internal/infra/cache"
	barberClient "github.com/m04kA/EL-BookingFlow/internal/integrations/barbershop"
	adminService "github.com/m04kA/EL-BookingFlow/internal/service/admin"
	draftService "github.com/m04kA/EL-BookingFlow/internal/service/draft"
	enrichmentService "github.com/m04kA/EL-BookingFlow/internal/service/enrichment"
	receiptService "github.com/m04kA/EL-BookingFlow/internal/service/receipt"
	getAvailableTimesUC "github.com/m04kA/EL-BookingFlow/internal/usecase/get_available_times"
	getBillingSummaryUC "github.com/m04kA/EL-BookingFlow/internal/usecase/get_billing_summary"
	selectServicesUC "github.com/m04kA/EL-BookingFlow/internal/usecase/select_services"
	selectTimeSlotUC "github.com/m04kA/EL-BookingFlow/internal/usecase/select_time_slot"
	submitBookingUC "github.com/m04kA/EL-BookingFlow/internal/usecase/submit_booking"
	updateDetailsUC "github.com/m04kA/EL-BookingFlow/internal/usecase/update_details"
	"github.com/m04kA/EL-BookingFlow/pkg/logger"
	"github.com/m04kA/EL-BookingFlow/pkg/metrics"
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

	log.Info("Starting EL-BookingFlow...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем best-effort кеш: redis, либо in-memory fallback
	var (
		cacheStore  draftService.Cache
		queueCache  enrichmentService.Cache
		redisClient *redis.Client
	)
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		repo := cache.NewRepository(redisClient, time.Duration(cfg.Cache.TTLHours)*time.Hour)
		cacheStore = repo
		queueCache = repo
		log.Info("Redis cache enabled (addr=%s, db=%d)", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	} else {
		mem := cache.NewMemory()
		cacheStore = mem
		queueCache = mem
		log.Info("Redis cache disabled, using in-memory cache")
	}

	// Инициализируем клиента удаленного API барбершопа
	barber := barberClient.NewClient(
		cfg.BarberAPI.URL,
		time.Duration(cfg.BarberAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Barbershop API client initialized (url=%s, timeout=%ds)", cfg.BarberAPI.URL, cfg.BarberAPI.Timeout)

	// Инициализируем менеджер сессий и фоновую чистку
	var sessionGauge draftService.SessionGauge
	if metricsCollector != nil {
		sessionGauge = metricsCollector.ActiveSessions
	}
	sessionManager := draftService.NewManager(
		cacheStore,
		log,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
		sessionGauge,
	)

	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	go sessionManager.RunSessionCleanup(
		cleanupCtx,
		time.Duration(cfg.Session.SweepIntervalSeconds)*time.Second,
	)

	// Инициализируем сервисы
	var lookupMetrics enrichmentService.LookupMetrics
	if metricsCollector != nil {
		lookupMetrics = metricsCollector
	}
	enricher := enrichmentService.NewCoordinator(barber, queueCache, log, lookupMetrics)
	formatter := receiptService.NewFormatter()
	adminSvc := adminService.NewService(barber, log)

	// Инициализируем use cases
	selectServicesUseCase := selectServicesUC.NewUseCase(barber, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(barber, log)
	selectTimeSlotUseCase := selectTimeSlotUC.NewUseCase(barber, log)
	updateDetailsUseCase := updateDetailsUC.NewUseCase(log)
	getBillingSummaryUseCase := getBillingSummaryUC.NewUseCase(enricher, log)

	var submissionMetrics submitBookingUC.SubmissionMetrics
	if metricsCollector != nil {
		submissionMetrics = metricsCollector
	}
	submitBookingUseCase := submitBookingUC.NewUseCase(barber, formatter, submissionMetrics, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(sessionManager, log)
	getStaff := getStaffHandler.NewHandler(barber, log)
	selectServices := selectServicesHandler.NewHandler(selectServicesUseCase, sessionManager, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, sessionManager, log)
	selectTimeSlot := selectTimeSlotHandler.NewHandler(selectTimeSlotUseCase, sessionManager, log)
	updateDetails := updateDetailsHandler.NewHandler(updateDetailsUseCase, sessionManager, log)
	getBillingSummary := getBillingSummaryHandler.NewHandler(getBillingSummaryUseCase, sessionManager, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, sessionManager, log)
	getBookings := getBookingsHandler.NewHandler(adminSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(adminSvc, log)
	getPayments := getPaymentsHandler.NewHandler(adminSvc, log)
	acceptPayment := acceptPaymentHandler.NewHandler(adminSvc, log)
	cancelPayment := cancelPaymentHandler.NewHandler(adminSvc, log)
	deletePayment := deletePaymentHandler.NewHandler(adminSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (флоу бронирования)
	// ============================================================

	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/staff", getStaff.Handle).Methods(http.MethodGet)

	api.HandleFunc("/sessions/{sessionId}/services", selectServices.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/time", selectTimeSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/details", updateDetails.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/billing", getBillingSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/payments", getPayments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{bookingId}/accept", acceptPayment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/payments/{bookingId}/cancel", cancelPayment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/payments/{bookingId}", deletePayment.Handle).Methods(http.MethodDelete)

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

	cancelCleanup()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
