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

	checkAvailabilityHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/get_customer_bookings"
	getVenueScheduleHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/get_venue_schedule"
	updateBookingHandler "github.com/m04kA/AXB-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/AXB-BookingService/internal/api/middleware"
	"github.com/m04kA/AXB-BookingService/internal/config"
	bookingRepo "github.com/m04kA/AXB-BookingService/internal/infra/storage/booking"
	resourceRepo "github.com/m04kA/AXB-BookingService/internal/infra/storage/resource"
	rulesRepo "github.com/m04kA/AXB-BookingService/internal/infra/storage/rules"
	"github.com/m04kA/AXB-BookingService/internal/integrations/notify"
	"github.com/m04kA/AXB-BookingService/internal/integrations/payments"
	"github.com/m04kA/AXB-BookingService/internal/integrations/waiver"
	bookingsService "github.com/m04kA/AXB-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/AXB-BookingService/internal/usecase/create_booking"
	getBlockedStartsUC "github.com/m04kA/AXB-BookingService/internal/usecase/get_blocked_starts"
	updateBookingUC "github.com/m04kA/AXB-BookingService/internal/usecase/update_booking"
	"github.com/m04kA/AXB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AXB-BookingService/pkg/logger"
	"github.com/m04kA/AXB-BookingService/pkg/metrics"
	"github.com/m04kA/AXB-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/AXB-BookingService/pkg/txmanager"
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

	log.Info("Starting AXB-BookingService...")
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
	paymentsClient := payments.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	waiverClient := waiver.NewClient(
		cfg.Waiver.URL,
		time.Duration(cfg.Waiver.Timeout)*time.Second,
		log,
	)

	var notifyPublisher createBookingUC.NotifyPublisher
	if cfg.Notify.Enabled {
		notifyPublisher = notify.NewPublisher(cfg.Notify.URL, cfg.Notify.Queue, log)
		log.Info("Notify publisher initialized (queue=%s)", cfg.Notify.Queue)
	} else {
		notifyPublisher = notify.NewNopPublisher(log)
		log.Info("Notify publisher disabled")
	}
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Waiver=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Waiver.URL, cfg.Waiver.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		resourceRepository *resourceRepo.Repository
		rulesRepository    *rulesRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		resourceRepository,
		log,
	)

	// Инициализируем use cases
	getBlockedStartsUseCase := getBlockedStartsUC.NewUseCase(
		resourceRepository,
		bookingRepository,
		rulesRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		rulesRepository,
		paymentsClient,
		waiverClient,
		notifyPublisher,
		txMgr,
		log,
	)

	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		resourceRepository,
		rulesRepository,
		paymentsClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(getBlockedStartsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getVenueSchedule := getVenueScheduleHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

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

	// Проверка доступности времён старта
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Создание бронирования гостем
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос, правка и смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя по телефону
	protected.HandleFunc("/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// День площадки для стойки персонала
	protected.HandleFunc("/venue/schedule", getVenueSchedule.Handle).Methods(http.MethodGet)

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
