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

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/create_booking"
	createQuoteHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/create_quote"
	estimatePriceHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/estimate_price"
	getAvailabilityHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/list_bookings"
	validatePromoHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/validate_promo"
	wizardSessionHandler "github.com/m04kA/SBN-BookingService/internal/api/handlers/wizard_session"
	"github.com/m04kA/SBN-BookingService/internal/api/middleware"
	"github.com/m04kA/SBN-BookingService/internal/api/router"
	"github.com/m04kA/SBN-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SBN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SBN-BookingService/internal/infra/storage/schema"
	sessionStore "github.com/m04kA/SBN-BookingService/internal/infra/storage/session"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
	bookingsService "github.com/m04kA/SBN-BookingService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SBN-BookingService/internal/usecase/create_booking"
	generateQuoteUC "github.com/m04kA/SBN-BookingService/internal/usecase/generate_quote"
	getAvailabilityUC "github.com/m04kA/SBN-BookingService/internal/usecase/get_availability"
	validatePromoUC "github.com/m04kA/SBN-BookingService/internal/usecase/validate_promo"
	wizardSessionUC "github.com/m04kA/SBN-BookingService/internal/usecase/wizard_session"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
	"github.com/m04kA/SBN-BookingService/pkg/logger"
	"github.com/m04kA/SBN-BookingService/pkg/metrics"
)

// bookingStore общий интерфейс PostgreSQL и in-memory репозиториев
type bookingStore interface {
	createBookingUC.BookingRepository
	getAvailabilityUC.BookingRepository
	bookingsService.BookingRepository
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

	log.Info("Starting SBN-BookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	var bookings bookingStore
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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

		if cfg.Database.MigrateOnStart {
			if err := schema.Up(db, log); err != nil {
				log.Fatal("Failed to migrate database: %v", err)
			}
		}

		bookings = bookingRepo.NewRepository(db)
	default:
		log.Warn("Using in-memory booking storage, bookings are lost on restart")
		bookings = bookingRepo.NewMemoryRepository()
	}

	// Хранилище сессий мастера
	var sessions wizardSessionUC.SessionStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		log.Info("Wizard sessions stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())

		sessions = sessionStore.NewRedisStore(rdb, cfg.Redis.TTL())
	} else {
		sessions = sessionStore.NewMemoryStore(cfg.Redis.TTL())
	}

	// Тарифы и каталоги
	engine := pricing.NewEngine(cfg.PricingTables())
	addOns := cfg.AddOnCatalog()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookings, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookings, engine, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookings, cfg.AvailabilityRules(), log)
	validatePromoUseCase := validatePromoUC.NewUseCase(cfg.Promos(), log)
	generateQuoteUseCase := generateQuoteUC.NewUseCase(engine, addOns, validatePromoUseCase, metricsCollector, log)
	wizardSessionUseCase := wizardSessionUC.NewUseCase(
		sessions,
		wizard.GatewayFunc(createBookingUseCase.Execute),
		engine,
		addOns,
		metricsCollector,
		log,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		proxies, err := cfg.RateLimit.TrustedProxyNets()
		if err != nil {
			log.Fatal("Invalid trusted proxies: %v", err)
		}
		limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:            cfg.RateLimit.RPS,
			Burst:          cfg.RateLimit.Burst,
			IdleTTL:        cfg.RateLimit.IdleTTL(),
			TrustedProxies: proxies,
		}, log)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d, trusted_proxies=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(proxies))
	}

	// Инициализируем handlers и роутер
	handler := router.New(&router.Config{
		Logger:             log,
		CreateBooking:      createBookingHandler.NewHandler(createBookingUseCase, log),
		ListBookings:       listBookingsHandler.NewHandler(bookingSvc, log),
		GetBooking:         getBookingHandler.NewHandler(bookingSvc, log),
		GetAvailability:    getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
		ValidatePromo:      validatePromoHandler.NewHandler(validatePromoUseCase, log),
		EstimatePrice:      estimatePriceHandler.NewHandler(engine, log),
		CreateQuote:        createQuoteHandler.NewHandler(generateQuoteUseCase, log),
		WizardSession:      wizardSessionHandler.NewHandler(wizardSessionUseCase, log),
		Metrics:            metricsCollector,
		MetricsPath:        cfg.Metrics.Path,
		RateLimiter:        limiter,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
