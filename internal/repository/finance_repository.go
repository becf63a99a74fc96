package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

type saleRepository struct {
	db *sqlx.DB
}

func NewSaleRepository(db *sqlx.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	if err := r.db.SelectContext(ctx, &sales, `SELECT id, sale_date, total FROM sales ORDER BY sale_date`); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

// ListBetween returns sales with from <= sale_date < to.
func (r *saleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	query := `
		SELECT id, sale_date, total
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date
	`

	sales := []domain.Sale{}
	if err := r.db.SelectContext(ctx, &sales, query, from, to); err != nil {
		return nil, fmt.Errorf("list sales between %s and %s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}
	return sales, nil
}

type additionalIncomeRepository struct {
	db *sqlx.DB
}

func NewAdditionalIncomeRepository(db *sqlx.DB) AdditionalIncomeRepository {
	return &additionalIncomeRepository{db: db}
}

func (r *additionalIncomeRepository) List(ctx context.Context) ([]domain.AdditionalIncome, error) {
	incomes := []domain.AdditionalIncome{}
	query := `SELECT id, date, amount, description FROM additional_incomes ORDER BY date`
	if err := r.db.SelectContext(ctx, &incomes, query); err != nil {
		return nil, fmt.Errorf("list additional incomes: %w", err)
	}
	return incomes, nil
}

// ListBetween returns incomes with from <= date < to.
func (r *additionalIncomeRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.AdditionalIncome, error) {
	query := `
		SELECT id, date, amount, description
		FROM additional_incomes
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	incomes := []domain.AdditionalIncome{}
	if err := r.db.SelectContext(ctx, &incomes, query, from, to); err != nil {
		return nil, fmt.Errorf("list additional incomes between %s and %s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), err)
	}
	return incomes, nil
}

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) ListSimple(ctx context.Context) ([]domain.SimpleExpense, error) {
	expenses := []domain.SimpleExpense{}
	query := `SELECT id, date, amount, description FROM simple_expenses ORDER BY date`
	if err := r.db.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("list simple expenses: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepository) ListDetailed(ctx context.Context) ([]domain.DetailedExpense, error) {
	expenses := []domain.DetailedExpense{}
	query := `SELECT id, date, amount, status, category, description FROM detailed_expenses ORDER BY date`
	if err := r.db.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("list detailed expenses: %w", err)
	}
	return expenses, nil
}
