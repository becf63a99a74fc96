package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestSumInWindow_Empty(t *testing.T) {
	windows := map[string]Window{
		"month": MonthWindow(2024, time.June),
		"year":  YearWindow(2024),
		"day":   DayWindow(2024, time.June, 15),
	}

	for name, w := range windows {
		t.Run(name, func(t *testing.T) {
			assert.True(t, SumInWindow([]domain.Sale{}, saleDate, saleTotal, w).IsZero())
			assert.True(t, SumInWindow[domain.Sale](nil, saleDate, saleTotal, w).IsZero())
		})
	}
}

func TestSumInWindow_Windows(t *testing.T) {
	sales := []domain.Sale{
		{SaleDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(100)},
		{SaleDate: time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), Total: decimal.NewFromInt(200)},
		{SaleDate: time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC), Total: decimal.NewFromInt(300)},
		{SaleDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(400)},
		{SaleDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(500)},
		{Total: decimal.NewFromInt(1000)},
	}

	tests := []struct {
		name     string
		window   Window
		expected string
	}{
		{name: "month", window: MonthWindow(2024, time.June), expected: "600"},
		{name: "year", window: YearWindow(2024), expected: "1000"},
		{name: "day", window: DayWindow(2024, time.June, 15), expected: "200"},
		{name: "other year same month", window: MonthWindow(2023, time.June), expected: "500"},
		{name: "no match", window: MonthWindow(2025, time.January), expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, SumInWindow(sales, saleDate, saleTotal, tt.window))
		})
	}
}

func TestMonthWindow_UsesRecordLocalCalendar(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// 2024-07-01 02:00 in Jakarta is still June 30 in UTC; the record's own
	// calendar components decide.
	local := time.Date(2024, 7, 1, 2, 0, 0, 0, jakarta)

	assert.True(t, MonthWindow(2024, time.July)(local))
	assert.False(t, MonthWindow(2024, time.June)(local))
}

func TestWindowIn_ReadsDatesInBusinessZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// Stored as 2024-06-30T18:00Z, which is July 1 01:00 in Jakarta.
	stored := time.Date(2024, 7, 1, 1, 0, 0, 0, jakarta).UTC()

	assert.True(t, MonthWindow(2024, time.June)(stored))
	assert.True(t, MonthWindow(2024, time.July).In(jakarta)(stored))
	assert.False(t, MonthWindow(2024, time.June).In(jakarta)(stored))
	assert.False(t, MonthWindow(2024, time.July).In(jakarta)(time.Time{}))
}

func TestWindowsOf(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	incomes := []domain.AdditionalIncome{
		{Date: time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1)},
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(10)},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
	}
	ref := time.Date(2024, 2, 10, 0, 0, 0, 0, jakarta)

	// Feb 29 20:00 UTC is March 1 in Jakarta.
	assertDecimal(t, "10", SumInWindow(incomes, incomeDate, incomeAmount, MonthOf(ref)))
	assertDecimal(t, "111", SumInWindow(incomes, incomeDate, incomeAmount, YearOf(ref)))
	assertDecimal(t, "1", SumInWindow(incomes, incomeDate, incomeAmount, DayOf(time.Date(2024, 3, 1, 12, 0, 0, 0, jakarta))))
}
