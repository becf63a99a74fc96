package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "PENDING"
	PayrollStatusPaid    PayrollStatus = "PAID"
	PayrollStatusOverdue PayrollStatus = "OVERDUE"
	PayrollStatusPartial PayrollStatus = "PARTIAL"
)

// IsOutstanding reports whether the payroll still has to be paid out.
func (s PayrollStatus) IsOutstanding() bool {
	return s == PayrollStatusPending || s == PayrollStatusOverdue
}

type PayrollMode string

const (
	PayrollModeManual PayrollMode = "manual"
	PayrollModeHours  PayrollMode = "hours"
)

// Trainer is looked up by id only; payrolls never hold a reference to it.
type Trainer struct {
	ID         uuid.UUID           `json:"id" db:"id"`
	Name       string              `json:"name" db:"name"`
	HourlyRate decimal.NullDecimal `json:"hourly_rate" db:"hourly_rate"`
}

type HoursWorked struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	TrainerID uuid.UUID       `json:"trainer_id" db:"trainer_id"`
	Date      time.Time       `json:"date" db:"date"`
	Hours     decimal.Decimal `json:"hours" db:"hours"`
}

// Payroll is a trainer's pay for one month. TotalPayable is always derived
// from BaseSalary, Bonuses and Deductions.
type Payroll struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	TrainerID    uuid.UUID       `json:"trainer_id" db:"trainer_id"`
	Month        int             `json:"month" db:"month"`
	Year         int             `json:"year" db:"year"`
	BaseSalary   decimal.Decimal `json:"base_salary" db:"base_salary"`
	Bonuses      decimal.Decimal `json:"bonuses" db:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions" db:"deductions"`
	TotalPayable decimal.Decimal `json:"total_payable" db:"total_payable"`
	PaymentDate  *time.Time      `json:"payment_date,omitempty" db:"payment_date"`
	Status       PayrollStatus   `json:"status" db:"status"`
	Notes        string          `json:"notes" db:"notes"`
}

type CalculatePayrollRequest struct {
	TrainerID   uuid.UUID       `json:"trainer_id" validate:"required"`
	Month       int             `json:"month" validate:"min=1,max=12"`
	Year        int             `json:"year" validate:"min=2000,max=2100"`
	Mode        PayrollMode     `json:"mode" validate:"required,oneof=manual hours"`
	BaseSalary  decimal.Decimal `json:"base_salary" validate:"gte=0"`
	Bonuses     decimal.Decimal `json:"bonuses" validate:"gte=0"`
	Deductions  decimal.Decimal `json:"deductions" validate:"gte=0"`
	Status      PayrollStatus   `json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE PARTIAL"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Notes       string          `json:"notes" validate:"max=500"`
}
