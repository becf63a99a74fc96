package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segyhp/gym-backoffice/internal/cache"
	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/database"
	"github.com/segyhp/gym-backoffice/internal/repository"
	"github.com/segyhp/gym-backoffice/internal/scheduler"
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

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Component: "scheduler"})
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Database, cfg.Location())
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, cache warm-up will only compute", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	clk := clock.Real{Location: cfg.Location()}
	membershipRepo := repository.NewMembershipRepository(db)

	financeService := service.NewFinanceService(service.FinanceRepositories{
		Memberships:       membershipRepo,
		Sales:             repository.NewSaleRepository(db),
		AdditionalIncomes: repository.NewAdditionalIncomeRepository(db),
		Expenses:          repository.NewExpenseRepository(db),
		Payrolls:          repository.NewPayrollRepository(db),
	}, cache.NewSummaryCache(redisClient, cfg.Business.SummaryCacheTTL), clk)
	membershipService := service.NewMembershipService(membershipRepo, clk, cfg.Business.ExpiringWarningDays)

	jobs := scheduler.NewJobs(membershipService, financeService, cfg.Business.ExpiringWarningDays, log)

	// Initialize cron scheduler
	c, err := scheduler.New(cfg, jobs)
	if err != nil {
		log.Error("failed to schedule jobs", "error", err)
		os.Exit(1)
	}

	c.Start()
	log.Info("scheduler started",
		"expiration_sweep", cfg.Scheduler.ExpirationSweep,
		"cache_warmup", cfg.Scheduler.CacheWarmup,
		"timezone", cfg.Scheduler.Timezone)

	<-ctx.Done()

	log.Info("shutting down scheduler")
	<-c.Stop().Done()
	log.Info("scheduler stopped")
}
