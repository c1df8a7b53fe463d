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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	deletePackageHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/delete_package"
	getCatalogHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/get_catalog"
	getConfirmationHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/get_confirmation"
	listPackagesHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/list_packages"
	quoteBookingHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/quote_booking"
	savePackageHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/save_package"
	sendInquiryHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/send_inquiry"
	submitReservationHandler "github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers/submit_reservation"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/assembler"
	"github.com/m04kA/SMC-ConciergeBooking/internal/catalog"
	"github.com/m04kA/SMC-ConciergeBooking/internal/config"
	packagesRepo "github.com/m04kA/SMC-ConciergeBooking/internal/infra/storage/packages"
	reservationStore "github.com/m04kA/SMC-ConciergeBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ConciergeBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-ConciergeBooking/internal/integrations/smsgateway"
	"github.com/m04kA/SMC-ConciergeBooking/internal/jobs"
	"github.com/m04kA/SMC-ConciergeBooking/internal/pricing"
	packagesService "github.com/m04kA/SMC-ConciergeBooking/internal/service/packages"
	getConfirmationUC "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/get_confirmation"
	quoteBookingUC "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/quote_booking"
	sendInquiryUC "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/send_inquiry"
	submitReservationUC "github.com/m04kA/SMC-ConciergeBooking/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-ConciergeBooking/internal/validation"
	"github.com/m04kA/SMC-ConciergeBooking/internal/voucher"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/logger"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/metrics"
)

// visitorMaxIdle через сколько неактивный клиент забывается ограничителем
const visitorMaxIdle = 30 * time.Minute

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

	log.Info("Starting SMC-ConciergeBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс курорта: по нему считаются даты, сроки и same-day
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := &quoteBookingUC.RealTimeProvider{Location: location}

	// Каталоги услуг
	catalogs, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	if cfg.Catalog.File != "" {
		log.Info("Catalog overrides loaded from %s", cfg.Catalog.File)
	}

	validator := validation.NewValidator(catalogs)
	calculator := pricing.NewCalculator(catalogs, location)
	reservationAssembler := assembler.NewAssembler(catalogs)

	// Хранилище записей брони: Redis или память процесса
	var store interface {
		submitReservationUC.ReservationStore
		getConfirmationUC.ReservationStore
	}
	var memoryStore *reservationStore.MemoryStore

	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		store = reservationStore.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cfg.Booking.ReservationTTL())
		log.Info("Reservation store: redis at %s", cfg.Redis.Addr)
	} else {
		memoryStore = reservationStore.NewMemoryStore(cfg.Booking.ReservationTTL())
		store = memoryStore
		log.Warn("Reservation store: in-memory, reservations are lost on restart")
	}

	// Интеграции: SMS дежурному консьержу и почта для запросов
	var notifier submitReservationUC.Notifier
	if cfg.Twilio.Enabled() {
		smsClient, err := smsgateway.NewClient(smsgateway.Config{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
			ToNumber:   cfg.Twilio.ToNumber,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize sms gateway: %v", err)
		}
		notifier = smsClient
		log.Info("SMS notifications enabled")
	} else {
		log.Warn("SMS notifications disabled: twilio is not configured")
	}

	var mailClient *mailer.Client
	if cfg.SendGrid.Enabled() {
		mailClient, err = mailer.NewClient(mailer.Config{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
			ToEmail:   cfg.SendGrid.ToEmail,
			ToName:    cfg.SendGrid.ToName,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize mailer: %v", err)
		}
		log.Info("Inquiry relay enabled (to=%s)", cfg.SendGrid.ToEmail)
	} else {
		log.Warn("Inquiry relay disabled: sendgrid is not configured")
	}

	// Сохраненные пакеты (если настроена база)
	var packageSvc *packagesService.Service
	if cfg.Database.Enabled() {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var packageRepository *packagesRepo.Repository
		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
			packageRepository = packagesRepo.NewRepository(wrappedDB)
		} else {
			packageRepository = packagesRepo.NewRepository(db)
		}

		packageSvc = packagesService.NewService(
			packageRepository,
			validator,
			calculator,
			catalogs.CustomPackage.Items,
			timeProvider,
			log,
		)
	} else {
		log.Warn("Saved packages disabled: database is not configured")
	}

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		validator,
		calculator,
		metricsCollector,
		timeProvider,
		log,
	)

	submitReservationUseCase := submitReservationUC.NewUseCase(
		validator,
		calculator,
		reservationAssembler,
		store,
		notifier,
		metricsCollector,
		timeProvider,
		log,
	)

	getConfirmationUseCase := getConfirmationUC.NewUseCase(store, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogs, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	getConfirmation := getConfirmationHandler.NewHandler(
		getConfirmationUseCase,
		voucher.NewRenderer(cfg.Booking.CompanyName),
		log,
	)


	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Форма обратной связи (ограничение по IP)
	var inquiryLimiter *middleware.RateLimiter
	if mailClient != nil {
		sendInquiryUseCase := sendInquiryUC.NewUseCase(mailClient, metricsCollector, log)
		sendInquiry := sendInquiryHandler.NewHandler(sendInquiryUseCase, log)

		limiterOpts := []middleware.RateLimiterOption{middleware.WithRejectHandler(sendInquiry.TooManyRequests)}
		if cfg.RateLimit.TrustForwardedFor {
			limiterOpts = append(limiterOpts, middleware.WithTrustedProxy())
		}
		inquiryLimiter = middleware.NewRateLimiter(cfg.RateLimit.InquiryPerMinute, cfg.RateLimit.InquiryBurst, limiterOpts...)

		r.Handle("/api/services/inquiry",
			inquiryLimiter.Middleware(http.HandlerFunc(sendInquiry.Handle))).Methods(http.MethodPost)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	// Каталог услуги
	api.HandleFunc("/services/{serviceType}/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Проверка формы и расчет стоимости
	api.HandleFunc("/services/{serviceType}/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES (требуют X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// --- Бронирование ---
	// Передача брони на страницу подтверждения
	session.HandleFunc("/services/{serviceType}/reservations", submitReservation.Handle).Methods(http.MethodPost)

	// Страница подтверждения (JSON или PDF ваучер)
	session.HandleFunc("/booking/confirmation", getConfirmation.Handle).Methods(http.MethodGet)

	// --- Сохраненные пакеты ---
	if packageSvc != nil {
		listPackages := listPackagesHandler.NewHandler(packageSvc, log)
		savePackage := savePackageHandler.NewHandler(packageSvc, log)
		deletePackage := deletePackageHandler.NewHandler(packageSvc, log)

		session.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
		session.HandleFunc("/packages", savePackage.Handle).Methods(http.MethodPost)
		session.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)
	}

	// CORS для фронтенда
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Accept", middleware.SessionHeader}),
	)

	// Обслуживающие задачи
	scheduler := jobs.NewScheduler(jobs.DefaultTimeout, log)
	if memoryStore != nil {
		if err := scheduler.Register("reservation-purge", cfg.Jobs.ReservationPurgeSpec,
			jobs.PurgeReservations(memoryStore)); err != nil {
			log.Fatal("Failed to schedule job: %v", err)
		}
	}
	if inquiryLimiter != nil {
		if err := scheduler.Register("visitor-cleanup", cfg.Jobs.VisitorCleanupSpec,
			jobs.CleanupVisitors(inquiryLimiter, visitorMaxIdle)); err != nil {
			log.Fatal("Failed to schedule job: %v", err)
		}
	}
	if packageSvc != nil {
		if err := scheduler.Register("package-retention", cfg.Jobs.PackageRetentionSpec,
			jobs.PurgePackages(packageSvc, cfg.Jobs.PackageRetention())); err != nil {
			log.Fatal("Failed to schedule job: %v", err)
		}
	}
	scheduler.Start()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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

	scheduler.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
