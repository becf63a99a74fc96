package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "PENDING"
	ExpenseStatusPaid    ExpenseStatus = "PAID"
	ExpenseStatusOverdue ExpenseStatus = "OVERDUE"
)

// IsOutstanding reports whether the expense still needs to be paid.
func (s ExpenseStatus) IsOutstanding() bool {
	return s == ExpenseStatusPending || s == ExpenseStatusOverdue
}

type Sale struct {
	ID       uuid.UUID       `json:"id" db:"id"`
	SaleDate time.Time       `json:"sale_date" db:"sale_date"`
	Total    decimal.Decimal `json:"total" db:"total"`
}

type AdditionalIncome struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
}

// SimpleExpense has no status; it always counts towards expense totals.
type SimpleExpense struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
}

type DetailedExpense struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Status      ExpenseStatus   `json:"status" db:"status"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
}
