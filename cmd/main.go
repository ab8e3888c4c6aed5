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

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyPromocodeHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/apply_promocode"
	clearPromocodeHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/clear_promocode"
	createSessionHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/create_session"
	getBoatExtrasHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/get_boat_extras"
	getBoatsHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/get_boats"
	getLegalDurationsHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/get_legal_durations"
	getQuoteHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/get_quote"
	submitBookingHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/submit_booking"
	updateContactHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/update_contact"
	updateSelectionHandler "github.com/m04kA/BRS-PricingService/internal/api/handlers/update_selection"
	"github.com/m04kA/BRS-PricingService/internal/api/middleware"
	"github.com/m04kA/BRS-PricingService/internal/config"
	catalogRepo "github.com/m04kA/BRS-PricingService/internal/infra/storage/catalog"
	"github.com/m04kA/BRS-PricingService/internal/infra/storage/migrations"
	giftCardClient "github.com/m04kA/BRS-PricingService/internal/integrations/giftcards"
	discountClient "github.com/m04kA/BRS-PricingService/internal/integrations/promocodes"
	"github.com/m04kA/BRS-PricingService/internal/service/bookingform"
	catalogService "github.com/m04kA/BRS-PricingService/internal/service/catalog"
	discountService "github.com/m04kA/BRS-PricingService/internal/service/discount"
	durationsService "github.com/m04kA/BRS-PricingService/internal/service/durations"
	extrasService "github.com/m04kA/BRS-PricingService/internal/service/extras"
	sessionsService "github.com/m04kA/BRS-PricingService/internal/service/sessions"
	applyPromocodeUC "github.com/m04kA/BRS-PricingService/internal/usecase/apply_promocode"
	buildQuoteUC "github.com/m04kA/BRS-PricingService/internal/usecase/build_quote"
	submitBookingUC "github.com/m04kA/BRS-PricingService/internal/usecase/submit_booking"
	updateSelectionUC "github.com/m04kA/BRS-PricingService/internal/usecase/update_selection"
	"github.com/m04kA/BRS-PricingService/pkg/logger"
	"github.com/m04kA/BRS-PricingService/pkg/metrics"
)

const janitorInterval = time.Minute

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

	log.Info("Starting BRS-PricingService...")
	log.Info("Configuration loaded from config.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (каталог лодок)
	db, err := connectDB(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции схемы каталога
	if err := migrations.RunMigrations(ctx, db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Загружаем каталог в память и валидируем его инварианты.
	// Поврежденный каталог - отказ запуска, а не тихая деградация.
	catalogRepository := catalogRepo.NewRepository(db)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	if err := catalogSvc.Load(ctx); err != nil {
		log.Fatal("Failed to load pricing catalog: %v", err)
	}
	log.Info("Pricing catalog loaded: %d boats", len(catalogSvc.Boats()))

	// Инициализируем интеграционных клиентов
	giftCards := giftCardClient.NewClient(
		cfg.GiftCardService.URL,
		time.Duration(cfg.GiftCardService.Timeout)*time.Second,
		log,
	)
	discountCodes := discountClient.NewClient(
		cfg.DiscountService.URL,
		time.Duration(cfg.DiscountService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (GiftCardService=%s timeout=%ds, DiscountService=%s timeout=%ds)",
		cfg.GiftCardService.URL, cfg.GiftCardService.Timeout, cfg.DiscountService.URL, cfg.DiscountService.Timeout)

	// Хранилище сессий бронирования
	sessionStore := sessionsService.NewStore(
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
		log,
	)
	go sessionStore.RunJanitor(ctx, janitorInterval)

	// Инициализируем сервисы
	durationsSvc := durationsService.NewService(catalogSvc, log)
	extrasPricer := extrasService.NewPricer()
	discountCalc := discountService.NewCalculator()
	formValidator := bookingform.NewValidator()

	// Инициализируем use cases
	updateSelectionUseCase := updateSelectionUC.NewUseCase(sessionStore, catalogSvc, log)
	applyPromocodeUseCase := applyPromocodeUC.NewUseCase(sessionStore, giftCards, discountCodes, metricsCollector, log)
	buildQuoteUseCase := buildQuoteUC.NewUseCase(sessionStore, catalogSvc, extrasPricer, discountCalc, metricsCollector, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(sessionStore, catalogSvc, formValidator, buildQuoteUseCase, log)

	// Инициализируем handlers
	getBoats := getBoatsHandler.NewHandler(catalogSvc, log)
	getBoatExtras := getBoatExtrasHandler.NewHandler(catalogSvc, log)
	getLegalDurations := getLegalDurationsHandler.NewHandler(durationsSvc, log)
	createSession := createSessionHandler.NewHandler(sessionStore, log)
	updateSelection := updateSelectionHandler.NewHandler(updateSelectionUseCase, log)
	updateContact := updateContactHandler.NewHandler(sessionStore, catalogSvc, formValidator, log)
	applyPromocode := applyPromocodeHandler.NewHandler(applyPromocodeUseCase, log)
	clearPromocode := clearPromocodeHandler.NewHandler(sessionStore, log)
	getQuote := getQuoteHandler.NewHandler(buildQuoteUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/boats", getBoats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/boats/{boatId}/extras", getBoatExtras.Handle).Methods(http.MethodGet)
	api.HandleFunc("/boats/{boatId}/durations", getLegalDurations.HandleForBoat).Methods(http.MethodGet)
	api.HandleFunc("/durations", getLegalDurations.HandleForFilter).Methods(http.MethodGet)

	// --- Сессии бронирования ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/contact", updateContact.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/promocode", applyPromocode.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/promocode", clearPromocode.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/quote", getQuote.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancel() // останавливает janitor сессий

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// connectDB открывает соединение и ждет готовности базы с экспоненциальным
// backoff (база может подниматься дольше сервиса)
func connectDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	operation := func() error {
		return db.PingContext(ctx)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
