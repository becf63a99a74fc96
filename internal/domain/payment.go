package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusOverdue PaymentStatus = "OVERDUE"
)

// MembershipPayment is an append-only ledger entry recorded on every renewal.
type MembershipPayment struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	MembershipID      uuid.UUID       `json:"membership_id" db:"membership_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate       time.Time       `json:"payment_date" db:"payment_date"`
	NewExpirationDate time.Time       `json:"new_expiration_date" db:"new_expiration_date"`
	PaymentMethod     string          `json:"payment_method" db:"payment_method"`
	Status            PaymentStatus   `json:"status" db:"status"`
	Discount          decimal.Decimal `json:"discount" db:"discount"`
	Surcharge         decimal.Decimal `json:"surcharge" db:"surcharge"`
	Notes             string          `json:"notes" db:"notes"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// RegisterPaymentRequest carries the user's input when renewing a membership.
// Empty PaymentMethod and Status fall back to configured defaults.
type RegisterPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentDate   time.Time       `json:"payment_date" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"max=50"`
	Status        PaymentStatus   `json:"status" validate:"omitempty,oneof=PENDING PAID PARTIAL OVERDUE"`
	Discount      decimal.Decimal `json:"discount" validate:"gte=0"`
	Surcharge     decimal.Decimal `json:"surcharge" validate:"gte=0"`
	Notes         string          `json:"notes" validate:"max=500"`
}

type RegisterPaymentResponse struct {
	Membership *Membership        `json:"membership"`
	Payment    *MembershipPayment `json:"payment"`
}
