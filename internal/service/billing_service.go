package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/events"
	"github.com/segyhp/gym-backoffice/internal/repository"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

const compensationTimeout = 5 * time.Second

// SummaryInvalidator drops cached summaries affected by a change in one month.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context, year int, month time.Month) error
}

type BillingService struct {
	memberships repository.MembershipRepository
	payments    repository.MembershipPaymentRepository
	summaries   SummaryInvalidator
	publisher   events.RenewalPublisher
	clock       clock.Clock
	validate    *validator.Validate
	config      config.BusinessConfig
}

func NewBillingService(
	memberships repository.MembershipRepository,
	payments repository.MembershipPaymentRepository,
	summaries SummaryInvalidator,
	publisher events.RenewalPublisher,
	clk clock.Clock,
	cfg config.BusinessConfig,
) *BillingService {
	return &BillingService{
		memberships: memberships,
		payments:    payments,
		summaries:   summaries,
		publisher:   publisher,
		clock:       clk,
		validate:    domain.NewValidator(),
		config:      cfg,
	}
}

// RegisterPayment renews membership for one calendar month from the payment
// date. It records the payment, then moves the membership's expiration, and
// returns an updated copy; the membership argument is never modified.
func (s *BillingService) RegisterPayment(ctx context.Context, membership domain.Membership, request domain.RegisterPaymentRequest) (*domain.RegisterPaymentResponse, error) {
	if err := s.validate.StructCtx(ctx, request); err != nil {
		return nil, customError.WrapValidation(err)
	}

	newExpiration := utils.AddMonth(request.PaymentDate)

	updated := membership
	updated.EndDate = newExpiration
	updated.PaymentDate = request.PaymentDate
	if err := updated.Validate(); err != nil {
		return nil, customError.WrapValidation(err)
	}

	payment := &domain.MembershipPayment{
		ID:                uuid.New(),
		MembershipID:      membership.ID,
		Amount:            request.Amount,
		PaymentDate:       request.PaymentDate,
		NewExpirationDate: newExpiration,
		PaymentMethod:     request.PaymentMethod,
		Status:            request.Status,
		Discount:          request.Discount,
		Surcharge:         request.Surcharge,
		Notes:             request.Notes,
		CreatedAt:         s.clock.Now(),
	}
	if payment.PaymentMethod == "" {
		payment.PaymentMethod = s.config.DefaultPaymentMethod
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusPaid
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, customError.WrapDependencyWrite("create membership payment", err)
	}

	if err := s.memberships.UpdateExpiration(ctx, membership.ID, newExpiration, request.PaymentDate); err != nil {
		s.compensate(ctx, payment)
		return nil, customError.WrapDependencyWrite("update membership expiration", err)
	}

	s.afterRenewal(ctx, payment, membership.PaymentDate)

	return &domain.RegisterPaymentResponse{
		Membership: &updated,
		Payment:    payment,
	}, nil
}

// RegisterPaymentByID loads the membership and renews it.
func (s *BillingService) RegisterPaymentByID(ctx context.Context, membershipID uuid.UUID, request domain.RegisterPaymentRequest) (*domain.RegisterPaymentResponse, error) {
	membership, err := s.memberships.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapMembershipNotFound(membershipID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	return s.RegisterPayment(ctx, *membership, request)
}

// PaymentHistory returns the renewal ledger of a membership, newest first.
func (s *BillingService) PaymentHistory(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error) {
	if _, err := s.memberships.GetByID(ctx, membershipID); err != nil {
		if errors.Is(err, customError.ErrNotFound) {
			return nil, customError.WrapMembershipNotFound(membershipID.String())
		}
		return nil, customError.WrapDatabaseError(err)
	}

	payments, err := s.payments.ListByMembership(ctx, membershipID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return payments, nil
}

// compensate removes a payment whose membership update failed. It runs even
// when ctx was cancelled, since that is a common cause of the failure.
func (s *BillingService) compensate(ctx context.Context, payment *domain.MembershipPayment) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := s.payments.Delete(ctx, payment.ID); err != nil {
		slog.ErrorContext(ctx, "failed to roll back membership payment",
			"payment_id", payment.ID,
			"membership_id", payment.MembershipID,
			"error", err)
		return
	}

	slog.WarnContext(ctx, "rolled back membership payment after failed expiration update",
		"payment_id", payment.ID,
		"membership_id", payment.MembershipID)
}

// afterRenewal drops cached summaries for both the new payment month and the
// month the membership's income was counted in before, then announces the renewal.
func (s *BillingService) afterRenewal(ctx context.Context, payment *domain.MembershipPayment, previousPaymentDate time.Time) {
	if s.summaries != nil {
		s.invalidate(ctx, payment.PaymentDate)
		if !previousPaymentDate.IsZero() && !samePeriod(previousPaymentDate, payment.PaymentDate) {
			s.invalidate(ctx, previousPaymentDate)
		}
	}

	if s.publisher != nil {
		evt := events.NewMembershipRenewed(payment, s.clock.Now())
		if err := s.publisher.PublishRenewed(ctx, evt); err != nil {
			slog.WarnContext(ctx, "failed to publish renewal event",
				"membership_id", payment.MembershipID,
				"error", err)
		}
	}

	slog.InfoContext(ctx, "membership renewed",
		"membership_id", payment.MembershipID,
		"payment_id", payment.ID,
		"amount", payment.Amount.String(),
		"new_expiration_date", payment.NewExpirationDate.Format(time.DateOnly))
}

func (s *BillingService) invalidate(ctx context.Context, at time.Time) {
	if err := s.summaries.Invalidate(ctx, at.Year(), at.Month()); err != nil {
		slog.WarnContext(ctx, "failed to invalidate cached summaries",
			"period", at.Format("2006-01"),
			"error", err)
	}
}

func samePeriod(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
