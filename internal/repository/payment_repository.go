package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewMembershipPaymentRepository(db *sqlx.DB) MembershipPaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.MembershipPayment) error {
	query := `
		INSERT INTO membership_payments (id, membership_id, amount, payment_date, new_expiration_date,
			payment_method, status, discount, surcharge, notes, created_at)
		VALUES (:id, :membership_id, :amount, :payment_date, :new_expiration_date,
			:payment_method, :status, :discount, :surcharge, :notes, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("insert membership payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM membership_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membership payment %s: %w", id, err)
	}

	return requireAffected(res, "membership payment", id)
}

func (r *paymentRepository) ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error) {
	query := `
		SELECT id, membership_id, amount, payment_date, new_expiration_date,
			payment_method, status, discount, surcharge, notes, created_at
		FROM membership_payments
		WHERE membership_id = $1
		ORDER BY payment_date DESC, created_at DESC
	`

	payments := []domain.MembershipPayment{}
	if err := r.db.SelectContext(ctx, &payments, query, membershipID); err != nil {
		return nil, fmt.Errorf("list payments of membership %s: %w", membershipID, err)
	}

	return payments, nil
}
