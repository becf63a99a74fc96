package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown splits the monthly figures by source.
type Breakdown struct {
	MembershipIncome decimal.Decimal `json:"membership_income"`
	SaleIncome       decimal.Decimal `json:"sale_income"`
	AdditionalIncome decimal.Decimal `json:"additional_income"`
	SimpleExpense    decimal.Decimal `json:"simple_expense"`
	DetailedExpense  decimal.Decimal `json:"detailed_expense"`
	PayrollExpense   decimal.Decimal `json:"payroll_expense"`
}

type FinancialSummary struct {
	Year                int             `json:"year"`
	Month               time.Month      `json:"month"`
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
	MonthlyExpense      decimal.Decimal `json:"monthly_expense"`
	MonthlyProfit       decimal.Decimal `json:"monthly_profit"`
	YearlyIncome        decimal.Decimal `json:"yearly_income"`
	YearlyExpense       decimal.Decimal `json:"yearly_expense"`
	YearlyProfit        decimal.Decimal `json:"yearly_profit"`
	PreviousMonthIncome decimal.Decimal `json:"previous_month_income"`
	GrowthRate          decimal.Decimal `json:"growth_rate"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"`
	PendingMemberships  int             `json:"pending_memberships"`
	PendingExpenses     int             `json:"pending_expenses"`
	PendingPayroll      decimal.Decimal `json:"pending_payroll"`
	MonthlyBreakdown    Breakdown       `json:"monthly_breakdown"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// DailyIncome is one point of the current-month income chart.
type DailyIncome struct {
	Day              int             `json:"day"`
	MembershipIncome decimal.Decimal `json:"membership_income"`
	SaleIncome       decimal.Decimal `json:"sale_income"`
	AdditionalIncome decimal.Decimal `json:"additional_income"`
	Total            decimal.Decimal `json:"total"`
}

type DailySeriesResponse struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Days    []DailyIncome   `json:"days"`
	Peak    decimal.Decimal `json:"peak"`
	Average decimal.Decimal `json:"average"`
}
