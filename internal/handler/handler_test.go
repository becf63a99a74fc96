package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
	"github.com/segyhp/gym-backoffice/internal/mocks"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
	"github.com/segyhp/gym-backoffice/pkg/logger"
	"github.com/segyhp/gym-backoffice/pkg/response"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	billing     *mocks.MockBillingService
	memberships *mocks.MockMembershipService
	finance     *mocks.MockFinanceService
	payroll     *mocks.MockPayrollService
	handler     http.Handler
}

var handlerNow = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func newTestServer(db Pinger) *testServer {
	s := &testServer{
		billing:     &mocks.MockBillingService{},
		memberships: &mocks.MockMembershipService{},
		finance:     &mocks.MockFinanceService{},
		payroll:     &mocks.MockPayrollService{},
	}
	s.handler = NewRouter(Handlers{
		Billing: NewBillingHandler(s.billing, s.memberships, time.UTC),
		Finance: NewFinanceHandler(s.finance, clock.Fixed(handlerNow)),
		Payroll: NewPayrollHandler(s.payroll),
		Health:  NewHealthHandler(db, nil, time.Second),
	}, logger.Nop(), nil)
	return s
}

func (s *testServer) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRegisterPayment(t *testing.T) {
	s := newTestServer(fakePinger{})
	membershipID := uuid.New()
	result := &domain.RegisterPaymentResponse{
		Membership: &domain.Membership{ID: membershipID, EndDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		Payment:    &domain.MembershipPayment{ID: uuid.New(), MembershipID: membershipID},
	}

	s.billing.On("RegisterPaymentByID", mock.Anything, membershipID, mock.MatchedBy(func(req domain.RegisterPaymentRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(150000)) &&
			req.PaymentDate.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) &&
			req.PaymentMethod == "transfer"
	})).Return(result, nil)

	rec := s.do(http.MethodPost, "/api/v1/memberships/"+membershipID.String()+"/payments", map[string]any{
		"amount":         150000,
		"payment_date":   "2024-01-31",
		"payment_method": "transfer",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "2024-02-29")
	s.billing.AssertExpectations(t)
}

func TestRegisterPayment_Errors(t *testing.T) {
	membershipID := uuid.New()

	tests := []struct {
		name       string
		target     string
		body       any
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid id",
			target:     "/api/v1/memberships/not-a-uuid/payments",
			body:       map[string]any{"amount": 1, "payment_date": "2024-01-31"},
			wantStatus: http.StatusBadRequest,
			wantCode:   customError.ErrCodeValidation,
		},
		{
			name:       "bad date",
			target:     "/api/v1/memberships/" + membershipID.String() + "/payments",
			body:       map[string]any{"amount": 1, "payment_date": "31/01/2024"},
			wantStatus: http.StatusBadRequest,
			wantCode:   customError.ErrCodeValidation,
		},
		{
			name:       "membership not found",
			target:     "/api/v1/memberships/" + membershipID.String() + "/payments",
			body:       map[string]any{"amount": 1, "payment_date": "2024-01-31"},
			serviceErr: customError.WrapMembershipNotFound(membershipID.String()),
			wantStatus: http.StatusNotFound,
			wantCode:   customError.ErrCodeMembershipNotFound,
		},
		{
			name:       "store write failed",
			target:     "/api/v1/memberships/" + membershipID.String() + "/payments",
			body:       map[string]any{"amount": 1, "payment_date": "2024-01-31"},
			serviceErr: customError.WrapDependencyWrite("update membership expiration", errors.New("timeout")),
			wantStatus: http.StatusBadGateway,
			wantCode:   customError.ErrCodeDependencyWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(fakePinger{})
			if tt.serviceErr != nil {
				s.billing.On("RegisterPaymentByID", mock.Anything, membershipID, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := s.do(http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestAlerts(t *testing.T) {
	s := newTestServer(fakePinger{})
	alerts := []lifecycle.Alert{{
		MembershipID:   uuid.New(),
		EndDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Classification: lifecycle.Classification{State: lifecycle.StateExpired, Days: 4},
	}}
	s.memberships.On("Alerts", mock.Anything, 14).Return(alerts, nil)

	rec := s.do(http.MethodGet, "/api/v1/memberships/alerts?window=14", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"EXPIRED"`)

	rec = s.do(http.MethodGet, "/api/v1/memberships/alerts?window=soon", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceSummary(t *testing.T) {
	s := newTestServer(fakePinger{})
	s.finance.On("SummaryFor", mock.Anything, 2024, time.March).Return(&domain.FinancialSummary{Year: 2024, Month: time.March}, nil)
	s.finance.On("SummaryFor", mock.Anything, 2024, time.June).Return(&domain.FinancialSummary{Year: 2024, Month: time.June}, nil)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/finance/summary?month=2024-03", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/finance/summary", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/finance/summary?month=March", nil).Code)

	s.finance.AssertExpectations(t)
}

func TestFinanceDaily(t *testing.T) {
	s := newTestServer(fakePinger{})
	s.finance.On("DailySeries", mock.Anything, 2024, time.June).Return(&domain.DailySeriesResponse{
		Year:  2024,
		Month: time.June,
		Days:  make([]domain.DailyIncome, 30),
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/finance/daily?month=2024-06", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	s.finance.AssertExpectations(t)
}

func TestCalculatePayroll_MissingRate(t *testing.T) {
	s := newTestServer(fakePinger{})
	trainerID := uuid.New()
	s.payroll.On("Calculate", mock.Anything, mock.MatchedBy(func(req domain.CalculatePayrollRequest) bool {
		return req.TrainerID == trainerID && req.Mode == domain.PayrollModeHours
	})).Return(nil, customError.WrapMissingRate(trainerID.String()))

	rec := s.do(http.MethodPost, "/api/v1/payrolls", map[string]any{
		"trainer_id": trainerID,
		"month":      6,
		"year":       2024,
		"mode":       "hours",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, customError.ErrCodeMissingRate, decodeError(t, rec).Code)
}

func TestHealth(t *testing.T) {
	healthy := newTestServer(fakePinger{})
	assert.Equal(t, http.StatusOK, healthy.do(http.MethodGet, "/health", nil).Code)

	rec := healthy.do(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"disabled"`)

	broken := newTestServer(fakePinger{err: errors.New("connection refused")})
	assert.Equal(t, http.StatusServiceUnavailable, broken.do(http.MethodGet, "/health/ready", nil).Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	s := newTestServer(fakePinger{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/payrolls", nil)
	req.Header.Set("Origin", "http://admin.gym.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
