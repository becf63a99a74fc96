package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/segyhp/gym-backoffice/internal/cache"
	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/finance"
	"github.com/segyhp/gym-backoffice/internal/repository"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

// FinanceRepositories groups the read sides the dashboards aggregate over.
type FinanceRepositories struct {
	Memberships       repository.MembershipRepository
	Sales             repository.SaleRepository
	AdditionalIncomes repository.AdditionalIncomeRepository
	Expenses          repository.ExpenseRepository
	Payrolls          repository.PayrollRepository
}

type FinanceService struct {
	repos FinanceRepositories
	cache cache.SummaryCache
	clock clock.Clock
}

func NewFinanceService(repos FinanceRepositories, summaryCache cache.SummaryCache, clk clock.Clock) *FinanceService {
	if summaryCache == nil {
		summaryCache = cache.Disabled{}
	}
	return &FinanceService{
		repos: repos,
		cache: summaryCache,
		clock: clk,
	}
}

// Summary returns the financial summary of the current month.
func (s *FinanceService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	now := s.clock.Now()
	return s.SummaryFor(ctx, now.Year(), now.Month())
}

// SummaryFor returns the summary of the given month. The current month is
// evaluated at the present instant, past months at their last instant.
func (s *FinanceService) SummaryFor(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, error) {
	at, err := s.referenceInstant(year, month)
	if err != nil {
		return nil, err
	}

	cached, ok, err := s.cache.Get(ctx, year, month)
	if err != nil {
		slog.WarnContext(ctx, "summary cache read failed", "error", customError.WrapCacheError(err))
	}
	if ok {
		return cached, nil
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := finance.BuildSummary(snapshot, at)

	if err := s.cache.Set(ctx, &summary); err != nil {
		slog.WarnContext(ctx, "summary cache write failed", "error", customError.WrapCacheError(err))
	}

	return &summary, nil
}

// DailySeries returns per-day income for the given month with its peak and average.
func (s *FinanceService) DailySeries(ctx context.Context, year int, month time.Month) (*domain.DailySeriesResponse, error) {
	ref, err := s.referenceInstant(year, month)
	if err != nil {
		return nil, err
	}
	from := utils.StartOfMonth(ref)
	to := from.AddDate(0, 1, 0)

	var (
		memberships []domain.Membership
		sales       []domain.Sale
		incomes     []domain.AdditionalIncome
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		memberships, err = s.repos.Memberships.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.repos.Sales.ListBetween(gctx, from, to)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.repos.AdditionalIncomes.ListBetween(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	days := finance.BuildDailySeries(memberships, sales, incomes, ref)
	peak, average := finance.SeriesStats(days)

	return &domain.DailySeriesResponse{
		Year:    year,
		Month:   month,
		Days:    days,
		Peak:    peak,
		Average: average,
	}, nil
}

// Invalidate drops every cached summary that includes figures of the given
// month: all months of its year, whose yearly totals cover it, and the
// following month, whose growth rate compares against it.
func (s *FinanceService) Invalidate(ctx context.Context, year int, month time.Month) error {
	periods := make([]cache.Period, 0, 13)
	for m := time.January; m <= time.December; m++ {
		periods = append(periods, cache.Period{Year: year, Month: m})
	}
	if month == time.December {
		periods = append(periods, cache.Period{Year: year + 1, Month: time.January})
	}

	if err := s.cache.Delete(ctx, periods...); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}

// Refresh recomputes the current month's summary, replacing the cached copy.
func (s *FinanceService) Refresh(ctx context.Context) (*domain.FinancialSummary, error) {
	now := s.clock.Now()
	if err := s.cache.Delete(ctx, cache.Period{Year: now.Year(), Month: now.Month()}); err != nil {
		slog.WarnContext(ctx, "summary cache delete failed", "error", customError.WrapCacheError(err))
	}
	return s.SummaryFor(ctx, now.Year(), now.Month())
}

func (s *FinanceService) referenceInstant(year int, month time.Month) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, customError.WrapValidationMessage(fmt.Sprintf("month %d out of range", month))
	}

	now := s.clock.Now()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	switch {
	case year == now.Year() && month == now.Month():
		return now, nil
	case start.After(now):
		return time.Time{}, customError.WrapValidationMessage(
			fmt.Sprintf("%04d-%02d is in the future", year, int(month)),
		)
	default:
		return utils.EndOfMonth(start), nil
	}
}

// loadSnapshot reads every collection concurrently; the first failure cancels the rest.
func (s *FinanceService) loadSnapshot(ctx context.Context) (finance.Snapshot, error) {
	var snapshot finance.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Memberships, err = s.repos.Memberships.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Sales, err = s.repos.Sales.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.AdditionalIncomes, err = s.repos.AdditionalIncomes.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.SimpleExpenses, err = s.repos.Expenses.ListSimple(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.DetailedExpenses, err = s.repos.Expenses.ListDetailed(gctx)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Payrolls, err = s.repos.Payrolls.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return finance.Snapshot{}, customError.WrapDatabaseError(err)
	}

	return snapshot, nil
}
