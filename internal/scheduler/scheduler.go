// Package scheduler holds the periodic back-office jobs run by cmd/scheduler.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
	"github.com/segyhp/gym-backoffice/pkg/logger"
)

const jobTimeout = 2 * time.Minute

type MembershipAlerts interface {
	Alerts(ctx context.Context, windowDays int) ([]lifecycle.Alert, error)
}

type SummaryRefresher interface {
	Refresh(ctx context.Context) (*domain.FinancialSummary, error)
}

type Jobs struct {
	memberships MembershipAlerts
	summaries   SummaryRefresher
	window      int
	log         *logger.Logger
}

func NewJobs(memberships MembershipAlerts, summaries SummaryRefresher, windowDays int, log *logger.Logger) *Jobs {
	return &Jobs{
		memberships: memberships,
		summaries:   summaries,
		window:      windowDays,
		log:         log.WithComponent("scheduler"),
	}
}

// New returns a seconds-precision cron running in the configured time zone
// with both jobs registered.
func New(cfg *config.Config, jobs *Jobs) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(cfg.Location()))

	if _, err := c.AddFunc(cfg.Scheduler.ExpirationSweep, jobs.run("expiration_sweep", jobs.SweepExpirations)); err != nil {
		return nil, fmt.Errorf("schedule expiration sweep: %w", err)
	}

	if _, err := c.AddFunc(cfg.Scheduler.CacheWarmup, jobs.run("cache_warmup", jobs.WarmSummaryCache)); err != nil {
		return nil, fmt.Errorf("schedule cache warm-up: %w", err)
	}

	return c, nil
}

func (j *Jobs) run(name string, job func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			j.log.ErrorContext(ctx, "job failed", "job", name, "error", err)
			return
		}
		j.log.InfoContext(ctx, "job finished", "job", name, "duration_ms", time.Since(start).Milliseconds())
	}
}

// SweepExpirations logs every membership that is expired or about to expire
// so the front desk can chase renewals.
func (j *Jobs) SweepExpirations(ctx context.Context) error {
	alerts, err := j.memberships.Alerts(ctx, j.window)
	if err != nil {
		return err
	}

	expired, expiring := 0, 0
	for _, a := range alerts {
		switch a.State {
		case lifecycle.StateExpired:
			expired++
		case lifecycle.StateExpiringSoon:
			expiring++
		}
		j.log.DebugContext(ctx, "membership needs renewal",
			"membership_id", a.MembershipID,
			"state", a.State,
			"days", a.Days)
	}

	j.log.InfoContext(ctx, "expiration sweep",
		"expired", expired,
		"expiring_soon", expiring,
		"window_days", j.window)

	return nil
}

// WarmSummaryCache recomputes the current month's summary so dashboard reads hit the cache.
func (j *Jobs) WarmSummaryCache(ctx context.Context) error {
	summary, err := j.summaries.Refresh(ctx)
	if err != nil {
		return err
	}

	j.log.InfoContext(ctx, "summary cache warmed",
		"period", fmt.Sprintf("%04d-%02d", summary.Year, int(summary.Month)),
		"monthly_income", summary.MonthlyIncome.String())

	return nil
}
