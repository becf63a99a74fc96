// Package finance aggregates income and expense records into calendar
// windows and derives the back-office financial summary from them.
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window selects dates by their calendar components. A bare window reads the
// components of the date as given; use In to read them in a business zone.
type Window func(t time.Time) bool

// In returns a window that first converts each date to loc. The store hands
// back timestamps in its session zone, so aggregation must re-read them in the
// zone the month and day boundaries are defined in.
func (w Window) In(loc *time.Location) Window {
	if loc == nil {
		return w
	}
	return func(t time.Time) bool {
		if t.IsZero() {
			return false
		}
		return w(t.In(loc))
	}
}

// MonthWindow matches dates in the given month of the given year.
func MonthWindow(year int, month time.Month) Window {
	return func(t time.Time) bool {
		if t.IsZero() {
			return false
		}
		y, m, _ := t.Date()
		return y == year && m == month
	}
}

// YearWindow matches dates in the given calendar year.
func YearWindow(year int) Window {
	return func(t time.Time) bool {
		if t.IsZero() {
			return false
		}
		return t.Year() == year
	}
}

// DayWindow matches dates on exactly one calendar day.
func DayWindow(year int, month time.Month, day int) Window {
	return func(t time.Time) bool {
		if t.IsZero() {
			return false
		}
		y, m, d := t.Date()
		return y == year && m == month && d == day
	}
}

// MonthOf, YearOf and DayOf build windows around t, read in t's location.
func MonthOf(t time.Time) Window { return MonthWindow(t.Year(), t.Month()).In(t.Location()) }

func YearOf(t time.Time) Window { return YearWindow(t.Year()).In(t.Location()) }

func DayOf(t time.Time) Window {
	y, m, d := t.Date()
	return DayWindow(y, m, d).In(t.Location())
}

// SumInWindow sums amountOf over the records whose dateOf falls in window.
// An empty input sums to zero.
func SumInWindow[T any](records []T, dateOf func(T) time.Time, amountOf func(T) decimal.Decimal, window Window) decimal.Decimal {
	return SumWhere(records, func(r T) bool { return window(dateOf(r)) }, amountOf)
}

// SumWhere sums amountOf over the records accepted by keep.
func SumWhere[T any](records []T, keep func(T) bool, amountOf func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if keep(r) {
			total = total.Add(amountOf(r))
		}
	}
	return total
}
