package utils

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// AddMonth adds one calendar month to t, clamping to the last day of the
// target month when the source day does not exist there (Jan 31 -> Feb 28/29).
func AddMonth(t time.Time) time.Time {
	return AddMonths(t, 1)
}

// AddMonths adds n calendar months to t with end-of-month clamping.
// time.AddDate normalises overflow into the following month, which is not
// what a billing cycle wants.
func AddMonths(t time.Time, n int) time.Time {
	year, month, d := t.Date()
	hour, min, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if last := DaysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, hour, min, sec, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PreviousMonth returns the month before (year, month), wrapping January
// into December of the previous year.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// CeilDays converts a duration into whole days, rounding up.
// 6.1 hours counts as one day; negative durations round towards zero.
func CeilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last representable instant of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string, loc *time.Location) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// Percent returns part/whole*100 rounded to two places, or zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
}
