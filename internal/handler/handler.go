package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
)

type BillingService interface {
	RegisterPaymentByID(ctx context.Context, membershipID uuid.UUID, request domain.RegisterPaymentRequest) (*domain.RegisterPaymentResponse, error)
	PaymentHistory(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error)
}

type MembershipService interface {
	Alerts(ctx context.Context, windowDays int) ([]lifecycle.Alert, error)
	Counts(ctx context.Context, windowDays int) (lifecycle.Counts, error)
}

type FinanceService interface {
	SummaryFor(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, error)
	DailySeries(ctx context.Context, year int, month time.Month) (*domain.DailySeriesResponse, error)
}

type PayrollService interface {
	Calculate(ctx context.Context, request domain.CalculatePayrollRequest) (*domain.Payroll, error)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID", name)
	}
	return id, nil
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

// parseDate accepts a plain YYYY-MM-DD date in loc or a full RFC 3339 timestamp.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}
