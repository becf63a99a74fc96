package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/gym-backoffice/internal/cache"
	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/database"
	"github.com/segyhp/gym-backoffice/internal/events"
	"github.com/segyhp/gym-backoffice/internal/handler"
	"github.com/segyhp/gym-backoffice/internal/repository"
	"github.com/segyhp/gym-backoffice/internal/service"
	"github.com/segyhp/gym-backoffice/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Component: "server"})
	logger.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Connect(ctx, cfg.Database, cfg.Location())
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("database migrations applied")
	}

	// Initialize Redis; caching is optional
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, summary caching disabled", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var publisher events.RenewalPublisher = events.Noop{}
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn("AMQP unavailable, renewal events disabled", "error", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
		}
	}

	clk := clock.Real{Location: cfg.Location()}

	// Initialize repositories
	membershipRepo := repository.NewMembershipRepository(db)
	paymentRepo := repository.NewMembershipPaymentRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)

	// Initialize services
	financeService := service.NewFinanceService(service.FinanceRepositories{
		Memberships:       membershipRepo,
		Sales:             repository.NewSaleRepository(db),
		AdditionalIncomes: repository.NewAdditionalIncomeRepository(db),
		Expenses:          repository.NewExpenseRepository(db),
		Payrolls:          payrollRepo,
	}, cache.NewSummaryCache(redisClient, cfg.Business.SummaryCacheTTL), clk)

	billingService := service.NewBillingService(membershipRepo, paymentRepo, financeService, publisher, clk, cfg.Business)
	membershipService := service.NewMembershipService(membershipRepo, clk, cfg.Business.ExpiringWarningDays)
	payrollService := service.NewPayrollService(
		repository.NewTrainerRepository(db),
		repository.NewHoursWorkedRepository(db),
		payrollRepo,
		financeService,
	)

	// Setup routes
	router := handler.NewRouter(handler.Handlers{
		Billing: handler.NewBillingHandler(billingService, membershipService, cfg.Location()),
		Finance: handler.NewFinanceHandler(financeService, clk),
		Payroll: handler.NewPayrollHandler(payrollService),
		Health:  handler.NewHealthHandler(db, redisClient, cfg.Health.Timeout),
	}, log, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", server.Addr, "env", cfg.Server.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server exited")
	return nil
}
