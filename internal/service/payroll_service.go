package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/payroll"
	"github.com/segyhp/gym-backoffice/internal/repository"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
)

type PayrollService struct {
	trainers  repository.TrainerRepository
	hours     repository.HoursWorkedRepository
	payrolls  repository.PayrollRepository
	summaries SummaryInvalidator
	validate  *validator.Validate
}

func NewPayrollService(
	trainers repository.TrainerRepository,
	hours repository.HoursWorkedRepository,
	payrolls repository.PayrollRepository,
	summaries SummaryInvalidator,
) *PayrollService {
	return &PayrollService{
		trainers:  trainers,
		hours:     hours,
		payrolls:  payrolls,
		summaries: summaries,
		validate:  domain.NewValidator(),
	}
}

// Calculate creates or updates a trainer's payroll for one month.
//
// In manual mode the request's base salary, bonuses and deductions are taken
// as is. In hours mode the base salary is derived from the hours logged in
// the month and the trainer's rate, then bonuses and deductions are applied
// on top. Nothing is written when the rate is missing.
func (s *PayrollService) Calculate(ctx context.Context, request domain.CalculatePayrollRequest) (*domain.Payroll, error) {
	if err := s.validate.StructCtx(ctx, request); err != nil {
		return nil, customError.WrapValidation(err)
	}

	p, err := s.current(ctx, request.TrainerID, request.Month, request.Year)
	if err != nil {
		return nil, err
	}

	switch request.Mode {
	case domain.PayrollModeManual:
		payroll.ApplyManual(&p, request.BaseSalary, request.Bonuses, request.Deductions)

	case domain.PayrollModeHours:
		trainer, err := s.trainers.GetByID(ctx, request.TrainerID)
		if err != nil {
			if errors.Is(err, customError.ErrNotFound) {
				return nil, customError.WrapTrainerNotFound(request.TrainerID.String())
			}
			return nil, customError.WrapDatabaseError(err)
		}

		hours, err := s.hours.ListByTrainerPeriod(ctx, request.TrainerID, request.Month, request.Year)
		if err != nil {
			return nil, customError.WrapDatabaseError(err)
		}

		if err := payroll.ApplyHours(&p, *trainer, hours); err != nil {
			return nil, err
		}

		p.Bonuses = request.Bonuses
		p.Deductions = request.Deductions
		payroll.Recompute(&p)
	}

	if request.Status != "" {
		p.Status = request.Status
	}
	if request.PaymentDate != nil {
		p.PaymentDate = request.PaymentDate
	}
	if request.Notes != "" {
		p.Notes = request.Notes
	}

	if err := s.payrolls.Upsert(ctx, &p); err != nil {
		return nil, customError.WrapDependencyWrite("save payroll", err)
	}

	if s.summaries != nil {
		if err := s.summaries.Invalidate(ctx, p.Year, time.Month(p.Month)); err != nil {
			slog.WarnContext(ctx, "failed to invalidate cached summaries", "error", err)
		}
	}

	slog.InfoContext(ctx, "payroll saved",
		"trainer_id", p.TrainerID,
		"period", time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		"mode", request.Mode,
		"total_payable", p.TotalPayable.String())

	return &p, nil
}

// current returns a copy of the stored payroll for the period, or a fresh pending one.
func (s *PayrollService) current(ctx context.Context, trainerID uuid.UUID, month, year int) (domain.Payroll, error) {
	existing, err := s.payrolls.GetByTrainerPeriod(ctx, trainerID, month, year)
	switch {
	case err == nil:
		return *existing, nil
	case errors.Is(err, customError.ErrNotFound):
		return domain.Payroll{
			ID:        uuid.New(),
			TrainerID: trainerID,
			Month:     month,
			Year:      year,
			Status:    domain.PayrollStatusPending,
		}, nil
	default:
		return domain.Payroll{}, customError.WrapDatabaseError(err)
	}
}
