package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

const membershipColumns = `id, user_id, plan_id, start_date, end_date, amount_paid, payment_method, payment_date`

type membershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`

	var membership domain.Membership
	if err := r.db.GetContext(ctx, &membership, query, id); err != nil {
		return nil, notFound(err, "membership", id)
	}

	return &membership, nil
}

func (r *membershipRepository) List(ctx context.Context) ([]domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships ORDER BY end_date`

	memberships := []domain.Membership{}
	if err := r.db.SelectContext(ctx, &memberships, query); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	return memberships, nil
}

func (r *membershipRepository) UpdateExpiration(ctx context.Context, id uuid.UUID, endDate, paymentDate time.Time) error {
	query := `
		UPDATE memberships
		SET end_date = $2, payment_date = $3, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, endDate, paymentDate)
	if err != nil {
		return fmt.Errorf("update membership %s: %w", id, err)
	}

	return requireAffected(res, "membership", id)
}
