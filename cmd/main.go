package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelbookinghandler "github.com/m04kA/BarberBookingService/internal/api/handlers/cancel_booking"
	completebookinghandler "github.com/m04kA/BarberBookingService/internal/api/handlers/complete_booking"
	createbookinghandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_booking"
	createservicehandler "github.com/m04kA/BarberBookingService/internal/api/handlers/create_service"
	deleteservicehandler "github.com/m04kA/BarberBookingService/internal/api/handlers/delete_service"
	getslotshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_available_slots"
	getbookingshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_bookings"
	getdashboardhandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_dashboard"
	getreviewshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_reviews"
	getserviceshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_services"
	getsettingshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_settings"
	getsharelinkhandler "github.com/m04kA/BarberBookingService/internal/api/handlers/get_share_link"
	submitreviewhandler "github.com/m04kA/BarberBookingService/internal/api/handlers/submit_review"
	updatebookinghandler "github.com/m04kA/BarberBookingService/internal/api/handlers/update_booking"
	updateservicehandler "github.com/m04kA/BarberBookingService/internal/api/handlers/update_service"
	updatesettingshandler "github.com/m04kA/BarberBookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/BarberBookingService/internal/api/middleware"
	"github.com/m04kA/BarberBookingService/internal/config"
	"github.com/m04kA/BarberBookingService/internal/infra/kv"
	filestore "github.com/m04kA/BarberBookingService/internal/infra/kv/file"
	pgstore "github.com/m04kA/BarberBookingService/internal/infra/kv/postgres"
	redisstore "github.com/m04kA/BarberBookingService/internal/infra/kv/redis"
	bookingstorage "github.com/m04kA/BarberBookingService/internal/infra/storage/bookings"
	servicestorage "github.com/m04kA/BarberBookingService/internal/infra/storage/services"
	settingsstorage "github.com/m04kA/BarberBookingService/internal/infra/storage/settings"
	"github.com/m04kA/BarberBookingService/internal/integrations/gemini"
	bookingssvc "github.com/m04kA/BarberBookingService/internal/service/bookings"
	catalogsvc "github.com/m04kA/BarberBookingService/internal/service/catalog"
	settingssvc "github.com/m04kA/BarberBookingService/internal/service/settings"
	createbookinguc "github.com/m04kA/BarberBookingService/internal/usecase/create_booking"
	getslotsuc "github.com/m04kA/BarberBookingService/internal/usecase/get_available_slots"
	getdashboarduc "github.com/m04kA/BarberBookingService/internal/usecase/get_dashboard"
	submitreviewuc "github.com/m04kA/BarberBookingService/internal/usecase/submit_review"
	"github.com/m04kA/BarberBookingService/pkg/kvmetrics"
	"github.com/m04kA/BarberBookingService/pkg/logger"
	"github.com/m04kA/BarberBookingService/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.ServiceName)
	}

	store, cleanup, err := buildStore(ctx, cfg, m)
	if err != nil {
		log.Fatal("failed to init storage backend %s: %v", cfg.Storage.Backend, err)
	}
	defer cleanup()
	log.Info("storage backend: %s", cfg.Storage.Backend)

	now := time.Now()
	bookingRepo, err := bookingstorage.NewRepository(ctx, store, now)
	if err != nil {
		log.Fatal("failed to init bookings repository: %v", err)
	}
	serviceRepo, err := servicestorage.NewRepository(ctx, store, now)
	if err != nil {
		log.Fatal("failed to init services repository: %v", err)
	}
	settingsRepo, err := settingsstorage.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("failed to init settings repository: %v", err)
	}

	var fallbackRecorder gemini.FallbackRecorder
	if m != nil {
		fallbackRecorder = m
	}
	textGen, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout(), log, fallbackRecorder)
	if err != nil {
		log.Fatal("failed to init gemini client: %v", err)
	}

	var bookingCounter createbookinguc.BookingCounter
	if m != nil {
		bookingCounter = m
	}

	// Use cases
	getSlotsUC := getslotsuc.NewUseCase(bookingRepo, log)
	createBookingUC := createbookinguc.NewUseCase(bookingRepo, serviceRepo, settingsRepo, textGen, bookingCounter, log)
	submitReviewUC := submitreviewuc.NewUseCase(bookingRepo, serviceRepo, log)
	dashboardUC := getdashboarduc.New(bookingRepo, serviceRepo, settingsRepo, textGen, &getdashboarduc.RealTimeProvider{}, log)

	// Services
	catalogService := catalogsvc.New(serviceRepo, &catalogsvc.RealTimeProvider{}, log)
	bookingsService := bookingssvc.New(bookingRepo, log)
	settingsService := settingssvc.New(settingsRepo, cfg.App.PublicURL, log)

	router := mux.NewRouter()
	router.Use(middleware.Logging(log))
	if m != nil {
		router.Use(middleware.Metrics(m))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты клиентской страницы
	api.HandleFunc("/settings", getsettingshandler.New(settingsService, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getserviceshandler.New(catalogService, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getslotshandler.New(getSlotsUC, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createbookinghandler.New(createBookingUC, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews", submitreviewhandler.New(submitReviewUC, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/reviews", getreviewshandler.New(bookingsService, log).Handle).Methods(http.MethodGet)

	// Маршруты персонала, требуют X-Role: staff
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.StaffOnly)
	staff.HandleFunc("/dashboard", getdashboardhandler.New(dashboardUC, log).Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings", getbookingshandler.New(bookingsService, log).Handle).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id}", updatebookinghandler.New(bookingsService, log).Handle).Methods(http.MethodPut)
	staff.HandleFunc("/bookings/{id}/complete", completebookinghandler.New(bookingsService, log).Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/bookings/{id}/cancel", cancelbookinghandler.New(bookingsService, log).Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/services", createservicehandler.New(catalogService, log).Handle).Methods(http.MethodPost)
	staff.HandleFunc("/services/{id}", updateservicehandler.New(catalogService, log).Handle).Methods(http.MethodPut)
	staff.HandleFunc("/services/{id}", deleteservicehandler.New(catalogService, log).Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/settings", updatesettingshandler.New(settingsService, log).Handle).Methods(http.MethodPut)
	staff.HandleFunc("/share-link", getsharelinkhandler.New(settingsService).Handle).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on :%d", cfg.Server.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed: %v", err)
	}
}

// buildStore создает key-value хранилище согласно конфигурации
// При включенных метриках хранилище оборачивается сбором метрик операций
func buildStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (kv.Store, func(), error) {
	noop := func() {}

	var (
		store   kv.Store
		cleanup func()
		err     error
	)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err = filestore.NewStore(cfg.Storage.File.Dir)
		cleanup = noop
	case config.BackendRedis:
		var rs *redisstore.Store
		rs, err = redisstore.NewStore(ctx, cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
		if err == nil {
			store = rs
			cleanup = func() { _ = rs.Close() }
		}
	case config.BackendPostgres:
		var db *sql.DB
		db, err = sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err == nil {
			store, err = pgstore.NewStore(ctx, db)
			cleanup = func() { _ = db.Close() }
		}
	default:
		err = fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, nil, err
	}

	if m != nil {
		store = kvmetrics.Wrap(store, cfg.Storage.Backend, m, kv.ErrKeyNotFound)
	}

	return store, cleanup, nil
}
