package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod  = errors.New("membership end date must be after start date")
	ErrNegativeAmount = errors.New("amount paid cannot be negative")
)

// Membership is a member's paid access interval. UserID and PlanID are nil
// when the referenced user or plan has been removed from the store.
type Membership struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        *uuid.UUID      `json:"user_id,omitempty" db:"user_id"`
	PlanID        *uuid.UUID      `json:"plan_id,omitempty" db:"plan_id"`
	StartDate     time.Time       `json:"start_date" db:"start_date"`
	EndDate       time.Time       `json:"end_date" db:"end_date"`
	AmountPaid    decimal.Decimal `json:"amount_paid" db:"amount_paid"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date" db:"payment_date"`
}

func (m Membership) Validate() error {
	if !m.EndDate.After(m.StartDate) {
		return ErrInvalidPeriod
	}
	if m.AmountPaid.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Plan is a product definition a membership is based on.
type Plan struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Price          decimal.Decimal `json:"price" db:"price"`
	DurationMonths int             `json:"duration_months" db:"duration_months"`
}
