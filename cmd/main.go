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

	chatMessageHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/chat_message"
	createPaymentIntentHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/create_payment_intent"
	downloadTicketHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/download_ticket"
	getMuseumHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/get_museum"
	getTicketHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/get_ticket"
	importMuseumsHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/import_museums"
	listMuseumsHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/list_museums"
	putMuseumHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/put_museum"
	settlePaymentHandler "github.com/m04kA/SMC-MuseumService/internal/api/handlers/settle_payment"
	"github.com/m04kA/SMC-MuseumService/internal/api/middleware"
	"github.com/m04kA/SMC-MuseumService/internal/config"
	museumRepo "github.com/m04kA/SMC-MuseumService/internal/infra/storage/museum"
	paymentRepo "github.com/m04kA/SMC-MuseumService/internal/infra/storage/payment"
	ticketRecordRepo "github.com/m04kA/SMC-MuseumService/internal/infra/storage/ticketrecord"
	completionClient "github.com/m04kA/SMC-MuseumService/internal/integrations/completionservice"
	"github.com/m04kA/SMC-MuseumService/internal/seed"
	assistantService "github.com/m04kA/SMC-MuseumService/internal/service/assistant"
	catalogService "github.com/m04kA/SMC-MuseumService/internal/service/catalog"
	ticketsService "github.com/m04kA/SMC-MuseumService/internal/service/tickets"
	createPaymentIntentUC "github.com/m04kA/SMC-MuseumService/internal/usecase/create_payment_intent"
	processMessageUC "github.com/m04kA/SMC-MuseumService/internal/usecase/process_message"
	settlePaymentUC "github.com/m04kA/SMC-MuseumService/internal/usecase/settle_payment"
	"github.com/m04kA/SMC-MuseumService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MuseumService/pkg/logger"
	"github.com/m04kA/SMC-MuseumService/pkg/metrics"
	"github.com/m04kA/SMC-MuseumService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MuseumService/pkg/txmanager"
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

	log.Info("Starting SMC-MuseumService...")
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

	// Инициализируем клиент completion-сервиса ассистента
	assistantClient := completionClient.NewClient(
		cfg.Assistant.URL,
		cfg.Assistant.APIKey,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.Timeout)*time.Second,
		log,
	)
	log.Info("Completion client initialized (url=%s, model=%s, enabled=%t)",
		cfg.Assistant.URL, cfg.Assistant.Model, cfg.Assistant.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		museumRepository       *museumRepo.Repository
		paymentRepository      *paymentRepo.Repository
		ticketRecordRepository *ticketRecordRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		museumRepository = museumRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		ticketRecordRepository = ticketRecordRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		museumRepository = museumRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		ticketRecordRepository = ticketRecordRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(museumRepository, seed.Museums, log)
	if err := catalogSvc.Load(context.Background()); err != nil {
		log.Fatal("Failed to load museum catalog: %v", err)
	}
	log.Info("Museum catalog loaded: %d museums (snapshot v%d)",
		catalogSvc.Snapshot().Len(), catalogSvc.Snapshot().Version())

	assistantSvc := assistantService.NewService(assistantClient, catalogSvc, cfg.Assistant.Enabled, log)
	ticketsSvc := ticketsService.NewService(ticketRecordRepository, catalogSvc, log)

	// Инициализируем use cases
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		paymentRepository,
		catalogSvc,
		cfg.Payments.Currency,
		time.Duration(cfg.Payments.IntentDelayMS)*time.Millisecond,
		log,
	)

	settlePaymentUseCase := settlePaymentUC.NewUseCase(
		paymentRepository,
		ticketRecordRepository,
		catalogSvc,
		txMgr,
		time.Duration(cfg.Payments.SettleDelayMS)*time.Millisecond,
		log,
	)

	processMessageUseCase := processMessageUC.NewUseCase(
		assistantSvc,
		catalogSvc,
		createPaymentIntentUseCase,
		log,
	)

	// Инициализируем handlers
	listMuseums := listMuseumsHandler.NewHandler(catalogSvc, log)
	getMuseum := getMuseumHandler.NewHandler(catalogSvc, log)
	putMuseum := putMuseumHandler.NewHandler(catalogSvc, log)
	importMuseums := importMuseumsHandler.NewHandler(catalogSvc, log)
	chatMessage := chatMessageHandler.NewHandler(processMessageUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	settlePayment := settlePaymentHandler.NewHandler(settlePaymentUseCase, log)
	getTicket := getTicketHandler.NewHandler(ticketsSvc, log)
	downloadTicket := downloadTicketHandler.NewHandler(ticketsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, log))
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

	// Каталог музеев
	api.HandleFunc("/museums", listMuseums.Handle).Methods(http.MethodGet)
	api.HandleFunc("/museums/{museumId}", getMuseum.Handle).Methods(http.MethodGet)

	// Диалог с ассистентом
	api.HandleFunc("/chat", chatMessage.Handle).Methods(http.MethodPost)

	// Checkout
	api.HandleFunc("/payments/intents", createPaymentIntent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/{paymentId}/settle", settlePayment.Handle).Methods(http.MethodPost)

	// Билеты
	api.HandleFunc("/tickets/{bookingId}", getTicket.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tickets/{bookingId}/receipt", downloadTicket.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT с ролью admin)
	// ============================================================

	adminAuth := middleware.NewAdminAuth(cfg.Auth.JWTSecret, log)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(adminAuth.Middleware)

	// Запись в каталог
	admin.HandleFunc("/museums/{museumId}", putMuseum.Handle).Methods(http.MethodPut)

	// Импорт seed-набора
	admin.HandleFunc("/museums/import", importMuseums.Handle).Methods(http.MethodPost)

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
