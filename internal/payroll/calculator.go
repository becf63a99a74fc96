// Package payroll computes trainer payroll amounts.
package payroll

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
)

// Total returns base + bonuses - deductions. Negative results are kept:
// deductions may exceed the gross amount.
func Total(base, bonuses, deductions decimal.Decimal) decimal.Decimal {
	return base.Add(bonuses).Sub(deductions)
}

// Recompute restores TotalPayable from the three inputs.
func Recompute(p *domain.Payroll) {
	p.TotalPayable = Total(p.BaseSalary, p.Bonuses, p.Deductions)
}

// ApplyManual overwrites the salary inputs and recomputes the total.
func ApplyManual(p *domain.Payroll, base, bonuses, deductions decimal.Decimal) {
	p.BaseSalary = base
	p.Bonuses = bonuses
	p.Deductions = deductions
	Recompute(p)
}

// HoursForPeriod sums the trainer's hours dated in the given month and year.
func HoursForPeriod(hours []domain.HoursWorked, trainerID uuid.UUID, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, h := range hours {
		if inPeriod(h, trainerID, month, year) {
			total = total.Add(h.Hours)
		}
	}
	return total
}

// ApplyHours sets BaseSalary to the trainer's hours in the payroll period
// times the hourly rate. Without a positive rate it returns a MISSING_RATE
// error and leaves p untouched; non-positive hour entries are rejected the
// same way with a VALIDATION_ERROR.
func ApplyHours(p *domain.Payroll, trainer domain.Trainer, hours []domain.HoursWorked) error {
	if !trainer.HourlyRate.Valid || !trainer.HourlyRate.Decimal.IsPositive() {
		return customError.WrapMissingRate(trainer.ID.String())
	}

	for _, h := range hours {
		if inPeriod(h, trainer.ID, p.Month, p.Year) && !h.Hours.IsPositive() {
			return customError.WrapValidationMessage(
				fmt.Sprintf("hours entry %s on %s must be positive", h.ID, h.Date.Format("2006-01-02")),
			)
		}
	}

	worked := HoursForPeriod(hours, trainer.ID, p.Month, p.Year)
	p.BaseSalary = worked.Mul(trainer.HourlyRate.Decimal)
	Recompute(p)

	return nil
}

func inPeriod(h domain.HoursWorked, trainerID uuid.UUID, month, year int) bool {
	return h.TrainerID == trainerID && int(h.Date.Month()) == month && h.Date.Year() == year
}
