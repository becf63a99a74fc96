package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSnapshot() Snapshot {
	return Snapshot{
		Memberships: []domain.Membership{
			{PaymentDate: date(2024, 6, 3), AmountPaid: decimal.NewFromInt(150000), EndDate: date(2024, 7, 3)},
			{PaymentDate: date(2024, 5, 10), AmountPaid: decimal.NewFromInt(100000), EndDate: date(2024, 6, 10)},
			{PaymentDate: date(2024, 1, 15), AmountPaid: decimal.NewFromInt(80000), EndDate: date(2024, 2, 15)},
		},
		Sales: []domain.Sale{
			{SaleDate: date(2024, 6, 5), Total: decimal.NewFromInt(50000)},
			{SaleDate: date(2024, 5, 20), Total: decimal.NewFromInt(30000)},
			{SaleDate: date(2023, 6, 1), Total: decimal.NewFromInt(99999)},
		},
		AdditionalIncomes: []domain.AdditionalIncome{
			{Date: date(2024, 6, 7), Amount: decimal.NewFromInt(20000)},
			{Date: date(2024, 5, 7), Amount: decimal.NewFromInt(40000)},
		},
		SimpleExpenses: []domain.SimpleExpense{
			{Date: date(2024, 6, 1), Amount: decimal.NewFromInt(10000)},
			{Date: date(2024, 3, 1), Amount: decimal.NewFromInt(5000)},
		},
		DetailedExpenses: []domain.DetailedExpense{
			{Date: date(2024, 6, 2), Amount: decimal.NewFromInt(25000), Status: domain.ExpenseStatusPending},
			{Date: date(2024, 6, 15), Amount: decimal.NewFromInt(15000), Status: domain.ExpenseStatusPaid},
			{Date: date(2024, 2, 1), Amount: decimal.NewFromInt(7000), Status: domain.ExpenseStatusOverdue},
		},
		Payrolls: []domain.Payroll{
			{Month: 6, Year: 2024, TotalPayable: decimal.NewFromInt(60000), Status: domain.PayrollStatusPending},
			{Month: 6, Year: 2024, TotalPayable: decimal.NewFromInt(40000), Status: domain.PayrollStatusPaid},
			{Month: 5, Year: 2024, TotalPayable: decimal.NewFromInt(30000), Status: domain.PayrollStatusOverdue},
			{Month: 12, Year: 2023, TotalPayable: decimal.NewFromInt(11000), Status: domain.PayrollStatusPending},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	summary := BuildSummary(sampleSnapshot(), now)

	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, time.June, summary.Month)
	assertDecimal(t, "220000", summary.MonthlyIncome)
	assertDecimal(t, "110000", summary.MonthlyExpense)
	assertDecimal(t, "110000", summary.MonthlyProfit)
	assertDecimal(t, "50", summary.ProfitMargin)
	assertDecimal(t, "130000", summary.PreviousMonthIncome)
	assertDecimal(t, "69.23", summary.GrowthRate)
	assertDecimal(t, "470000", summary.YearlyIncome)
	assertDecimal(t, "152000", summary.YearlyExpense)
	assertDecimal(t, "318000", summary.YearlyProfit)
	assert.Equal(t, 2, summary.PendingMemberships)
	assert.Equal(t, 2, summary.PendingExpenses)
	assertDecimal(t, "101000", summary.PendingPayroll)

	assertDecimal(t, "150000", summary.MonthlyBreakdown.MembershipIncome)
	assertDecimal(t, "50000", summary.MonthlyBreakdown.SaleIncome)
	assertDecimal(t, "20000", summary.MonthlyBreakdown.AdditionalIncome)
	assertDecimal(t, "60000", summary.MonthlyBreakdown.PayrollExpense)
	assert.Equal(t, now, summary.GeneratedAt)
}

func TestBuildSummary_PreviousMonthWrapsYear(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		Memberships: []domain.Membership{
			{PaymentDate: date(2023, 12, 28), AmountPaid: decimal.NewFromInt(100)},
		},
		Sales: []domain.Sale{
			{SaleDate: date(2024, 1, 5), Total: decimal.NewFromInt(150)},
			{SaleDate: date(2023, 12, 1), Total: decimal.NewFromInt(100)},
		},
		AdditionalIncomes: []domain.AdditionalIncome{
			{Date: date(2023, 12, 2), Amount: decimal.NewFromInt(1000)},
		},
	}

	summary := BuildSummary(snapshot, now)

	assertDecimal(t, "200", summary.PreviousMonthIncome)
	assertDecimal(t, "150", summary.MonthlyIncome)
	assertDecimal(t, "-25", summary.GrowthRate)
	assertDecimal(t, "150", summary.YearlyIncome)
}

func TestBuildSummary_ZeroDenominators(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		snapshot Snapshot
	}{
		{name: "empty snapshot", snapshot: Snapshot{}},
		{
			name: "expenses without income",
			snapshot: Snapshot{
				SimpleExpenses: []domain.SimpleExpense{{Date: date(2024, 6, 1), Amount: decimal.NewFromInt(5000)}},
				Payrolls:       []domain.Payroll{{Month: 6, Year: 2024, TotalPayable: decimal.NewFromInt(9000), Status: domain.PayrollStatusPending}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildSummary(tt.snapshot, now)

			assert.True(t, summary.MonthlyIncome.IsZero())
			assert.True(t, summary.ProfitMargin.IsZero())
			assert.True(t, summary.GrowthRate.IsZero())
		})
	}
}

func TestBuildSummary_GrowthZeroWithoutPreviousIncome(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		Sales: []domain.Sale{{SaleDate: date(2024, 6, 1), Total: decimal.NewFromInt(5000)}},
		// Additional income in May does not count as a comparison base.
		AdditionalIncomes: []domain.AdditionalIncome{{Date: date(2024, 5, 1), Amount: decimal.NewFromInt(5000)}},
	}

	summary := BuildSummary(snapshot, now)

	assert.True(t, summary.PreviousMonthIncome.IsZero())
	assert.True(t, summary.GrowthRate.IsZero())
	assertDecimal(t, "100", summary.ProfitMargin)
}

func TestBuildSummary_NegativeMargin(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	snapshot := Snapshot{
		Sales:          []domain.Sale{{SaleDate: date(2024, 6, 1), Total: decimal.NewFromInt(1000)}},
		SimpleExpenses: []domain.SimpleExpense{{Date: date(2024, 6, 2), Amount: decimal.NewFromInt(1500)}},
	}

	summary := BuildSummary(snapshot, now)

	assertDecimal(t, "-500", summary.MonthlyProfit)
	assertDecimal(t, "-50", summary.ProfitMargin)
}

func TestBuildSummary_Idempotent(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	snapshot := sampleSnapshot()

	first := BuildSummary(snapshot, now)
	second := BuildSummary(snapshot, now)

	assert.Equal(t, first, second)
}
