package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

func TestBuildDailySeries_SingleDay(t *testing.T) {
	ref := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		{SaleDate: time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(200000)},
		{SaleDate: time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(999)},
	}
	memberships := []domain.Membership{
		{PaymentDate: time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC), AmountPaid: decimal.NewFromInt(70000)},
	}
	incomes := []domain.AdditionalIncome{
		{Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(30000)},
	}

	series := BuildDailySeries(memberships, sales, incomes, ref)

	require.Len(t, series, 30)
	for i, point := range series {
		assert.Equal(t, i+1, point.Day)
		if point.Day == 15 {
			assertDecimal(t, "70000", point.MembershipIncome)
			assertDecimal(t, "200000", point.SaleIncome)
			assertDecimal(t, "30000", point.AdditionalIncome)
			assertDecimal(t, "300000", point.Total)
			continue
		}
		assert.True(t, point.Total.IsZero(), "day %d should be empty", point.Day)
	}

	peak, average := SeriesStats(series)
	assertDecimal(t, "300000", peak)
	assertDecimal(t, "10000", average)
}

func TestBuildDailySeries_MonthLengths(t *testing.T) {
	tests := []struct {
		ref      time.Time
		expected int
	}{
		{ref: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), expected: 29},
		{ref: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), expected: 28},
		{ref: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.ref.Format("2006-01"), func(t *testing.T) {
			series := BuildDailySeries(nil, nil, nil, tt.ref)
			assert.Len(t, series, tt.expected)
			assert.Equal(t, tt.expected, series[len(series)-1].Day)
		})
	}
}

func TestBuildDailySeries_Restartable(t *testing.T) {
	ref := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	sales := []domain.Sale{{SaleDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(10)}}

	assert.Equal(t, BuildDailySeries(nil, sales, nil, ref), BuildDailySeries(nil, sales, nil, ref))
}

func TestSeriesStats_Empty(t *testing.T) {
	peak, average := SeriesStats(nil)

	assert.True(t, peak.IsZero())
	assert.True(t, average.IsZero())
}
