package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/coopfletes/backoffice/internal/adapter/http"
	"github.com/coopfletes/backoffice/internal/adapter/http/handler"
	"github.com/coopfletes/backoffice/internal/adapter/http/middleware"
	postgresRepo "github.com/coopfletes/backoffice/internal/adapter/repository/postgres"
	redisRepo "github.com/coopfletes/backoffice/internal/adapter/repository/redis"
	"github.com/coopfletes/backoffice/internal/infrastructure/config"
	"github.com/coopfletes/backoffice/internal/infrastructure/logger"
	"github.com/coopfletes/backoffice/internal/infrastructure/postgres"
	"github.com/coopfletes/backoffice/internal/infrastructure/redis"
	"github.com/coopfletes/backoffice/internal/usecase"
)

const (
	rateLimiterSweepInterval = 5 * time.Minute
	rateLimiterMaxIdle       = 10 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	asientoRepo := postgresRepo.NewAsientoRepository(pool)
	cuentaRepo := postgresRepo.NewCuentaRepository(pool)
	clientRepo := postgresRepo.NewClientRepository(pool)
	supplierRepo := postgresRepo.NewSupplierRepository(pool)
	vehicleRepo := postgresRepo.NewVehicleRepository(pool)
	remesaRepo := postgresRepo.NewRemesaRepository(pool)
	companyRepo := postgresRepo.NewCompanyRepository(pool)
	pmRepo := postgresRepo.NewPaymentMethodRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	officeRepo := postgresRepo.NewOfficeRepository(pool)
	asociadoRepo := postgresRepo.NewAsociadoRepository(pool)
	pagoAsociadoRepo := postgresRepo.NewPagoAsociadoRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	companyUC := usecase.NewCompanyUseCase(companyRepo, cache)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, companyUC, auditRepo, idGen)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, auditRepo, idGen)
	asientoUC := usecase.NewAsientoUseCase(asientoRepo, cuentaRepo, auditRepo, idGen)
	cuentaUC := usecase.NewCuentaUseCase(cuentaRepo, idGen)
	catalogUC := usecase.NewCatalogUseCase(clientRepo, supplierRepo, vehicleRepo, officeRepo, idGen)
	asociadoUC := usecase.NewAsociadoUseCase(asociadoRepo, pagoAsociadoRepo, companyUC, auditRepo, idGen)
	dispatchUC := usecase.NewDispatchUseCase(txManager, invoiceRepo, vehicleRepo, remesaRepo, auditRepo, idGen).WithRetrier(retrier)
	ledgerUC := usecase.NewLedgerUseCase(invoiceRepo, expenseRepo, asientoRepo, cuentaRepo, pmRepo, companyUC)

	// Create router
	routerCfg := httpAdapter.RouterConfig{
		InvoiceHandler:   handler.NewInvoiceHandler(invoiceUC, companyUC),
		ExpenseHandler:   handler.NewExpenseHandler(expenseUC),
		AsientoHandler:   handler.NewAsientoHandler(asientoUC),
		CuentaHandler:    handler.NewCuentaHandler(cuentaUC),
		CatalogHandler:   handler.NewCatalogHandler(catalogUC),
		AsociadoHandler:  handler.NewAsociadoHandler(asociadoUC),
		DispatchHandler:  handler.NewDispatchHandler(dispatchUC),
		CompanyHandler:   handler.NewCompanyHandler(companyUC, pmRepo),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, companyUC),
		AuditHandler:     handler.NewAuditHandler(auditRepo),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: idempotencyStore,
		Logger:           appLogger,
	}
	if cfg.RateLimitRPS > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		routerCfg.RateLimiter = rateLimiter

		// Evict idle per-client limiters so the map stays bounded.
		go func() {
			ticker := time.NewTicker(rateLimiterSweepInterval)
			defer ticker.Stop()
			for range ticker.C {
				rateLimiter.Cleanup(rateLimiterMaxIdle)
			}
		}()
	}
	router := httpAdapter.NewRouter(routerCfg)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
