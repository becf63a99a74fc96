package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

// BuildDailySeries returns one entry per calendar day of the month containing
// ref, ordered by day. Days are those of ref's location. Every call recomputes
// the series from its inputs.
func BuildDailySeries(memberships []domain.Membership, sales []domain.Sale, incomes []domain.AdditionalIncome, ref time.Time) []domain.DailyIncome {
	year, month := ref.Year(), ref.Month()
	days := utils.DaysInMonth(year, month)

	series := make([]domain.DailyIncome, 0, days)
	for d := 1; d <= days; d++ {
		w := DayOf(time.Date(year, month, d, 0, 0, 0, 0, ref.Location()))

		point := domain.DailyIncome{
			Day:              d,
			MembershipIncome: SumInWindow(memberships, membershipPaidOn, membershipAmount, w),
			SaleIncome:       SumInWindow(sales, saleDate, saleTotal, w),
			AdditionalIncome: SumInWindow(incomes, incomeDate, incomeAmount, w),
		}
		point.Total = point.MembershipIncome.Add(point.SaleIncome).Add(point.AdditionalIncome)

		series = append(series, point)
	}

	return series
}

// SeriesStats returns the highest daily total and the mean over all days.
func SeriesStats(series []domain.DailyIncome) (peak, average decimal.Decimal) {
	if len(series) == 0 {
		return decimal.Zero, decimal.Zero
	}

	sum := decimal.Zero
	peak = series[0].Total
	for _, p := range series {
		sum = sum.Add(p.Total)
		if p.Total.GreaterThan(peak) {
			peak = p.Total
		}
	}

	return peak, sum.Div(decimal.NewFromInt(int64(len(series))))
}
