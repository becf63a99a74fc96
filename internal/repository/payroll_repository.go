package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

const payrollColumns = `id, trainer_id, month, year, base_salary, bonuses, deductions, total_payable, payment_date, status, notes`

type payrollRepository struct {
	db *sqlx.DB
}

func NewPayrollRepository(db *sqlx.DB) PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) List(ctx context.Context) ([]domain.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls ORDER BY year, month`

	payrolls := []domain.Payroll{}
	if err := r.db.SelectContext(ctx, &payrolls, query); err != nil {
		return nil, fmt.Errorf("list payrolls: %w", err)
	}
	return payrolls, nil
}

func (r *payrollRepository) GetByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) (*domain.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE trainer_id = $1 AND month = $2 AND year = $3`

	var payroll domain.Payroll
	if err := r.db.GetContext(ctx, &payroll, query, trainerID, month, year); err != nil {
		return nil, notFound(err, "payroll", fmt.Sprintf("%s %04d-%02d", trainerID, year, month))
	}
	return &payroll, nil
}

// Upsert relies on the unique (trainer_id, month, year) constraint. On
// conflict the stored row keeps its id and the caller's id is overwritten.
func (r *payrollRepository) Upsert(ctx context.Context, payroll *domain.Payroll) error {
	query := `
		INSERT INTO payrolls (` + payrollColumns + `)
		VALUES (:id, :trainer_id, :month, :year, :base_salary, :bonuses, :deductions, :total_payable, :payment_date, :status, :notes)
		ON CONFLICT (trainer_id, month, year) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			bonuses = EXCLUDED.bonuses,
			deductions = EXCLUDED.deductions,
			total_payable = EXCLUDED.total_payable,
			payment_date = EXCLUDED.payment_date,
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, payroll)
	if err != nil {
		return fmt.Errorf("upsert payroll: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&payroll.ID); err != nil {
			return fmt.Errorf("scan payroll id: %w", err)
		}
	}
	return rows.Err()
}

type hoursWorkedRepository struct {
	db *sqlx.DB
}

func NewHoursWorkedRepository(db *sqlx.DB) HoursWorkedRepository {
	return &hoursWorkedRepository{db: db}
}

func (r *hoursWorkedRepository) ListByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) ([]domain.HoursWorked, error) {
	query := `
		SELECT id, trainer_id, date, hours
		FROM hours_worked
		WHERE trainer_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	hours := []domain.HoursWorked{}
	if err := r.db.SelectContext(ctx, &hours, query, trainerID, month, year); err != nil {
		return nil, fmt.Errorf("list hours of trainer %s: %w", trainerID, err)
	}
	return hours, nil
}

type trainerRepository struct {
	db *sqlx.DB
}

func NewTrainerRepository(db *sqlx.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error) {
	var trainer domain.Trainer
	if err := r.db.GetContext(ctx, &trainer, `SELECT id, name, hourly_rate FROM trainers WHERE id = $1`, id); err != nil {
		return nil, notFound(err, "trainer", id)
	}
	return &trainer, nil
}
