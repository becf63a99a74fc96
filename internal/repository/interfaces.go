package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

// MembershipRepository defines the interface for membership data operations
type MembershipRepository interface {
	// GetByID retrieves a membership; returns errors.ErrNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Membership, error)

	// List retrieves every membership
	List(ctx context.Context) ([]domain.Membership, error)

	// UpdateExpiration moves a membership's end date and last payment date
	UpdateExpiration(ctx context.Context, id uuid.UUID, endDate, paymentDate time.Time) error
}

// MembershipPaymentRepository defines the interface for the renewal ledger
type MembershipPaymentRepository interface {
	// Create appends a payment record
	Create(ctx context.Context, payment *domain.MembershipPayment) error

	// Delete removes a payment record. Only used to undo a half-finished renewal.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByMembership retrieves a membership's payments, newest first
	ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error)
}

type SaleRepository interface {
	List(ctx context.Context) ([]domain.Sale, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error)
}

type AdditionalIncomeRepository interface {
	List(ctx context.Context) ([]domain.AdditionalIncome, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.AdditionalIncome, error)
}

type ExpenseRepository interface {
	ListSimple(ctx context.Context) ([]domain.SimpleExpense, error)
	ListDetailed(ctx context.Context) ([]domain.DetailedExpense, error)
}

// PayrollRepository defines the interface for payroll data operations
type PayrollRepository interface {
	// List retrieves every payroll
	List(ctx context.Context) ([]domain.Payroll, error)

	// GetByTrainerPeriod retrieves the payroll of a trainer for one month;
	// returns errors.ErrNotFound when none was recorded yet
	GetByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) (*domain.Payroll, error)

	// Upsert creates the payroll or replaces the one for the same trainer and period
	Upsert(ctx context.Context, payroll *domain.Payroll) error
}

type HoursWorkedRepository interface {
	ListByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) ([]domain.HoursWorked, error)
}

type TrainerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error)
}
