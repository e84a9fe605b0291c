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

	availableTimeslotsHandler "github.com/petfit/booking-service/internal/api/handlers/available_timeslots"
	cancelSubscribeHandler "github.com/petfit/booking-service/internal/api/handlers/cancel_subscribe"
	confirmTimeslotHandler "github.com/petfit/booking-service/internal/api/handlers/confirm_timeslot"
	createManualBookingHandler "github.com/petfit/booking-service/internal/api/handlers/create_manual_booking"
	deleteBookingHandler "github.com/petfit/booking-service/internal/api/handlers/delete_booking"
	getAllBookingsHandler "github.com/petfit/booking-service/internal/api/handlers/get_all_bookings"
	getBookingHandler "github.com/petfit/booking-service/internal/api/handlers/get_booking"
	getExpiredSubscriptionsHandler "github.com/petfit/booking-service/internal/api/handlers/get_expired_subscriptions"
	masterDataHandler "github.com/petfit/booking-service/internal/api/handlers/master_data"
	mySubscriptionsHandler "github.com/petfit/booking-service/internal/api/handlers/my_subscriptions"
	subscribeHandler "github.com/petfit/booking-service/internal/api/handlers/subscribe"
	subscriptionCatalogHandler "github.com/petfit/booking-service/internal/api/handlers/subscription_catalog"
	subscriptionCustomersHandler "github.com/petfit/booking-service/internal/api/handlers/subscription_customers"
	subscriptionsByUserHandler "github.com/petfit/booking-service/internal/api/handlers/subscriptions_by_user"
	updateBookingHandler "github.com/petfit/booking-service/internal/api/handlers/update_booking"
	"github.com/petfit/booking-service/internal/api/middleware"
	"github.com/petfit/booking-service/internal/config"
	"github.com/petfit/booking-service/internal/infra"
	bookingRepo "github.com/petfit/booking-service/internal/infra/storage/booking"
	holidayRepo "github.com/petfit/booking-service/internal/infra/storage/holiday"
	masterdataRepo "github.com/petfit/booking-service/internal/infra/storage/masterdata"
	orderLineRepo "github.com/petfit/booking-service/internal/infra/storage/orderline"
	subscriptionRepo "github.com/petfit/booking-service/internal/infra/storage/subscription"
	subscriptionBookingRepo "github.com/petfit/booking-service/internal/infra/storage/subscriptionbooking"
	timeSlotRepo "github.com/petfit/booking-service/internal/infra/storage/timeslot"
	mailerClient "github.com/petfit/booking-service/internal/integrations/mailer"
	notifierClient "github.com/petfit/booking-service/internal/integrations/notifier"
	bookingsService "github.com/petfit/booking-service/internal/service/bookings"
	masterdataService "github.com/petfit/booking-service/internal/service/masterdata"
	subscriptionsService "github.com/petfit/booking-service/internal/service/subscriptions"
	cancelSubscribeUC "github.com/petfit/booking-service/internal/usecase/cancel_subscribe"
	confirmTimeslotUC "github.com/petfit/booking-service/internal/usecase/confirm_timeslot"
	createManualBookingUC "github.com/petfit/booking-service/internal/usecase/create_manual_booking"
	getAvailableTimeslotsUC "github.com/petfit/booking-service/internal/usecase/get_available_timeslots"
	subscribeUC "github.com/petfit/booking-service/internal/usecase/subscribe"
	updateManualBookingUC "github.com/petfit/booking-service/internal/usecase/update_manual_booking"
	"github.com/petfit/booking-service/pkg/dbmetrics"
	"github.com/petfit/booking-service/pkg/logger"
	"github.com/petfit/booking-service/pkg/metrics"
	"github.com/petfit/booking-service/pkg/simpletxmanager"
	"github.com/petfit/booking-service/pkg/txmanager"
)

// TxManager объединяет режимы транзакций, которые нужны usecases и сервисам
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting PetFit-BookingService...")
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

	// Прогоняем миграции
	if cfg.Migrations.Enabled {
		migrator, err := infra.NewMigrator(db, cfg.Migrations.Dir)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Migrations applied, schema version %d", version)
	}

	// Инициализируем интеграционных клиентов
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Notifier=%s timeout=%ds, Mailer=%s timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Mailer.URL, cfg.Mailer.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		orderLineRepository    *orderLineRepo.Repository
		timeSlotRepository     *timeSlotRepo.Repository
		holidayRepository      *holidayRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		sbRepository           *subscriptionBookingRepo.Repository
		masterdataRepository   *masterdataRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		orderLineRepository = orderLineRepo.NewRepository(wrappedDB)
		timeSlotRepository = timeSlotRepo.NewRepository(wrappedDB)
		holidayRepository = holidayRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		sbRepository = subscriptionBookingRepo.NewRepository(wrappedDB)
		masterdataRepository = masterdataRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		orderLineRepository = orderLineRepo.NewRepository(db)
		timeSlotRepository = timeSlotRepo.NewRepository(db)
		holidayRepository = holidayRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		sbRepository = subscriptionBookingRepo.NewRepository(db)
		masterdataRepository = masterdataRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, sbRepository, log)
	subscriptionSvc := subscriptionsService.NewService(subscriptionRepository, txMgr, log)
	masterDataSvc := masterdataService.NewService(masterdataRepository, holidayRepository, log)

	// Инициализируем use cases
	createManualBookingUseCase := createManualBookingUC.NewUseCase(
		bookingRepository,
		orderLineRepository,
		timeSlotRepository,
		holidayRepository,
		notifier,
		mailer,
		txMgr,
		log,
	)
	updateManualBookingUseCase := updateManualBookingUC.NewUseCase(
		bookingRepository,
		orderLineRepository,
		timeSlotRepository,
		holidayRepository,
		txMgr,
		log,
	)
	confirmTimeslotUseCase := confirmTimeslotUC.NewUseCase(
		timeSlotRepository,
		bookingRepository,
		orderLineRepository,
		holidayRepository,
		notifier,
		txMgr,
		log,
	)
	subscribeUseCase := subscribeUC.NewUseCase(subscriptionRepository, sbRepository, notifier, log)
	cancelSubscribeUseCase := cancelSubscribeUC.NewUseCase(sbRepository, log)
	availableTimeslotsUseCase := getAvailableTimeslotsUC.NewUseCase(timeSlotRepository, holidayRepository, log)

	// Инициализируем handlers
	createManualBooking := createManualBookingHandler.NewHandler(createManualBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateManualBookingUseCase, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	confirmTimeslot := confirmTimeslotHandler.NewHandler(confirmTimeslotUseCase, log)
	subscribe := subscribeHandler.NewHandler(subscribeUseCase, log)
	cancelSubscribe := cancelSubscribeHandler.NewHandler(cancelSubscribeUseCase, log)
	mySubscriptions := mySubscriptionsHandler.NewHandler(bookingSvc, log)
	subscriptionsByUser := subscriptionsByUserHandler.NewHandler(bookingSvc, log)
	getExpiredSubscriptions := getExpiredSubscriptionsHandler.NewHandler(bookingSvc, log)
	subscriptionCustomers := subscriptionCustomersHandler.NewHandler(bookingSvc, log)
	availableTimeslots := availableTimeslotsHandler.NewHandler(availableTimeslotsUseCase, log)
	subscriptionCatalog := subscriptionCatalogHandler.NewHandler(subscriptionSvc, log)
	masterData := masterDataHandler.NewHandler(masterDataSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; Auth только проставляет identity из X-User-ID,
	// обязательность проверяют сами обработчики
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Бронирования и слоты ---
	booking := api.PathPrefix("/booking").Subrouter()
	booking.HandleFunc("/create-manual-booking", createManualBooking.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/update-booking/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	booking.HandleFunc("/get-all-bookings", getAllBookings.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/get-booking/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/delete-booking/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	booking.HandleFunc("/confirm-timeslot/{timeslotId}", confirmTimeslot.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/available-timeslots", availableTimeslots.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/subscribe", subscribe.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/cancel-subscribe", cancelSubscribe.Handle).Methods(http.MethodPost)
	booking.HandleFunc("/my-subscriptions", mySubscriptions.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/subscriptions-by-user-id/{userId}", subscriptionsByUser.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/get-expired-subscriptions", getExpiredSubscriptions.Handle).Methods(http.MethodGet)
	booking.HandleFunc("/subscription-customers/{subscriptionId}", subscriptionCustomers.Handle).Methods(http.MethodGet)

	// --- Каталог подписок ---
	subs := api.PathPrefix("/subscriptions").Subrouter()
	subs.HandleFunc("/create", subscriptionCatalog.HandleCreate).Methods(http.MethodPost)
	subs.HandleFunc("/update/{subscriptionId}", subscriptionCatalog.HandleUpdate).Methods(http.MethodPut)
	subs.HandleFunc("/get-all", subscriptionCatalog.HandleGetAll).Methods(http.MethodGet)
	subs.HandleFunc("/get/{subscriptionId}", subscriptionCatalog.HandleGet).Methods(http.MethodGet)
	subs.HandleFunc("/delete/{subscriptionId}", subscriptionCatalog.HandleDelete).Methods(http.MethodDelete)
	subs.HandleFunc("/by-trainer/{trainerId}", subscriptionCatalog.HandleByTrainer).Methods(http.MethodGet)
	subs.HandleFunc("/by-location/{locationId}", subscriptionCatalog.HandleByLocation).Methods(http.MethodGet)
	subs.HandleFunc("/by-date", subscriptionCatalog.HandleByDate).Methods(http.MethodPost)
	subs.HandleFunc("/search", subscriptionCatalog.HandleSearch).Methods(http.MethodGet)
	subs.HandleFunc("/filter", subscriptionCatalog.HandleFilter).Methods(http.MethodPost)
	subs.HandleFunc("/nearby", subscriptionCatalog.HandleNearby).Methods(http.MethodPost)
	subs.HandleFunc("/expired", subscriptionCatalog.HandleGetExpired).Methods(http.MethodGet)

	// --- Справочники ---
	master := api.PathPrefix("/master").Subrouter()
	master.HandleFunc("/categories", masterData.HandleCreateCategory).Methods(http.MethodPost)
	master.HandleFunc("/categories", masterData.HandleListCategories).Methods(http.MethodGet)
	master.HandleFunc("/categories/{id}", masterData.HandleGetCategory).Methods(http.MethodGet)
	master.HandleFunc("/categories/{id}", masterData.HandleUpdateCategory).Methods(http.MethodPut)
	master.HandleFunc("/categories/{id}", masterData.HandleDeleteCategory).Methods(http.MethodDelete)
	master.HandleFunc("/session-types", masterData.HandleCreateSessionType).Methods(http.MethodPost)
	master.HandleFunc("/session-types", masterData.HandleListSessionTypes).Methods(http.MethodGet)
	master.HandleFunc("/session-types/{id}", masterData.HandleGetSessionType).Methods(http.MethodGet)
	master.HandleFunc("/session-types/{id}", masterData.HandleUpdateSessionType).Methods(http.MethodPut)
	master.HandleFunc("/session-types/{id}", masterData.HandleDeleteSessionType).Methods(http.MethodDelete)
	master.HandleFunc("/locations", masterData.HandleCreateLocation).Methods(http.MethodPost)
	master.HandleFunc("/locations", masterData.HandleListLocations).Methods(http.MethodGet)
	master.HandleFunc("/locations/{id}", masterData.HandleGetLocation).Methods(http.MethodGet)
	master.HandleFunc("/locations/{id}", masterData.HandleUpdateLocation).Methods(http.MethodPut)
	master.HandleFunc("/locations/{id}", masterData.HandleDeleteLocation).Methods(http.MethodDelete)
	master.HandleFunc("/tax-rates", masterData.HandleCreateTaxRate).Methods(http.MethodPost)
	master.HandleFunc("/tax-rates", masterData.HandleListTaxRates).Methods(http.MethodGet)
	master.HandleFunc("/tax-rates/{id}", masterData.HandleGetTaxRate).Methods(http.MethodGet)
	master.HandleFunc("/tax-rates/{id}", masterData.HandleUpdateTaxRate).Methods(http.MethodPut)
	master.HandleFunc("/tax-rates/{id}", masterData.HandleDeleteTaxRate).Methods(http.MethodDelete)
	master.HandleFunc("/holidays", masterData.HandleCreateHoliday).Methods(http.MethodPost)
	master.HandleFunc("/holidays", masterData.HandleListHolidays).Methods(http.MethodGet)
	master.HandleFunc("/holidays/{id}", masterData.HandleGetHoliday).Methods(http.MethodGet)
	master.HandleFunc("/holidays/{id}", masterData.HandleUpdateHoliday).Methods(http.MethodPut)
	master.HandleFunc("/holidays/{id}", masterData.HandleDeleteHoliday).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
