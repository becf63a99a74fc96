package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

// Snapshot is the read-only input to BuildSummary.
type Snapshot struct {
	Memberships       []domain.Membership
	Sales             []domain.Sale
	AdditionalIncomes []domain.AdditionalIncome
	SimpleExpenses    []domain.SimpleExpense
	DetailedExpenses  []domain.DetailedExpense
	Payrolls          []domain.Payroll
}

// BuildSummary computes the monthly and yearly figures for the calendar
// month and year containing now, with every record read in now's location.
// The result depends only on its arguments.
func BuildSummary(s Snapshot, now time.Time) domain.FinancialSummary {
	year, month := now.Year(), now.Month()
	monthly := MonthOf(now)
	yearly := YearOf(now)

	breakdown := domain.Breakdown{
		MembershipIncome: SumInWindow(s.Memberships, membershipPaidOn, membershipAmount, monthly),
		SaleIncome:       SumInWindow(s.Sales, saleDate, saleTotal, monthly),
		AdditionalIncome: SumInWindow(s.AdditionalIncomes, incomeDate, incomeAmount, monthly),
		SimpleExpense:    SumInWindow(s.SimpleExpenses, simpleDate, simpleAmount, monthly),
		DetailedExpense:  SumInWindow(s.DetailedExpenses, detailedDate, detailedAmount, monthly),
		PayrollExpense:   SumWhere(s.Payrolls, outstandingPayrollFor(year, int(month)), payrollTotal),
	}

	monthlyIncome := breakdown.MembershipIncome.Add(breakdown.SaleIncome).Add(breakdown.AdditionalIncome)
	monthlyExpense := breakdown.SimpleExpense.Add(breakdown.DetailedExpense).Add(breakdown.PayrollExpense)

	yearlyIncome := s.income(yearly)
	yearlyExpense := SumInWindow(s.SimpleExpenses, simpleDate, simpleAmount, yearly).
		Add(SumInWindow(s.DetailedExpenses, detailedDate, detailedAmount, yearly)).
		Add(SumWhere(s.Payrolls, outstandingPayrollFor(year, 0), payrollTotal))

	// Additional income is left out of the comparison base on purpose; the
	// dashboards have always compared against memberships and sales only.
	prevYear, prevMonth := utils.PreviousMonth(year, month)
	previous := MonthWindow(prevYear, prevMonth).In(now.Location())
	previousIncome := SumInWindow(s.Memberships, membershipPaidOn, membershipAmount, previous).
		Add(SumInWindow(s.Sales, saleDate, saleTotal, previous))

	monthlyProfit := monthlyIncome.Sub(monthlyExpense)

	return domain.FinancialSummary{
		Year:                year,
		Month:               month,
		MonthlyIncome:       monthlyIncome,
		MonthlyExpense:      monthlyExpense,
		MonthlyProfit:       monthlyProfit,
		YearlyIncome:        yearlyIncome,
		YearlyExpense:       yearlyExpense,
		YearlyProfit:        yearlyIncome.Sub(yearlyExpense),
		PreviousMonthIncome: previousIncome,
		GrowthRate:          GrowthRate(monthlyIncome, previousIncome),
		ProfitMargin:        ProfitMargin(monthlyProfit, monthlyIncome),
		PendingMemberships:  countExpired(s.Memberships, now),
		PendingExpenses:     countOutstanding(s.DetailedExpenses),
		PendingPayroll:      SumWhere(s.Payrolls, func(p domain.Payroll) bool { return p.Status.IsOutstanding() }, payrollTotal),
		MonthlyBreakdown:    breakdown,
		GeneratedAt:         now,
	}
}

func (s Snapshot) income(w Window) decimal.Decimal {
	return SumInWindow(s.Memberships, membershipPaidOn, membershipAmount, w).
		Add(SumInWindow(s.Sales, saleDate, saleTotal, w)).
		Add(SumInWindow(s.AdditionalIncomes, incomeDate, incomeAmount, w))
}

// GrowthRate is the month-over-month change in percent, or zero when there
// is no positive previous figure to compare against.
func GrowthRate(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return utils.Percent(current.Sub(previous), previous)
}

// ProfitMargin is profit as a percentage of income, or zero without income.
func ProfitMargin(profit, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return utils.Percent(profit, income)
}

// outstandingPayrollFor matches unpaid payrolls by their stored period.
// A zero month matches the whole year.
func outstandingPayrollFor(year, month int) func(domain.Payroll) bool {
	return func(p domain.Payroll) bool {
		if !p.Status.IsOutstanding() || p.Year != year {
			return false
		}
		return month == 0 || p.Month == month
	}
}

func countExpired(memberships []domain.Membership, now time.Time) int {
	n := 0
	for _, m := range memberships {
		if m.EndDate.Before(now) {
			n++
		}
	}
	return n
}

func countOutstanding(expenses []domain.DetailedExpense) int {
	n := 0
	for _, e := range expenses {
		if e.Status.IsOutstanding() {
			n++
		}
	}
	return n
}
