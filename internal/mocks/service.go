package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
)

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) RegisterPaymentByID(ctx context.Context, membershipID uuid.UUID, request domain.RegisterPaymentRequest) (*domain.RegisterPaymentResponse, error) {
	args := m.Called(ctx, membershipID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterPaymentResponse), args.Error(1)
}

func (m *MockBillingService) PaymentHistory(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipPayment), args.Error(1)
}

type MockMembershipService struct {
	mock.Mock
}

func (m *MockMembershipService) Alerts(ctx context.Context, windowDays int) ([]lifecycle.Alert, error) {
	args := m.Called(ctx, windowDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lifecycle.Alert), args.Error(1)
}

func (m *MockMembershipService) Counts(ctx context.Context, windowDays int) (lifecycle.Counts, error) {
	args := m.Called(ctx, windowDays)
	return args.Get(0).(lifecycle.Counts), args.Error(1)
}

type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) SummaryFor(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockFinanceService) DailySeries(ctx context.Context, year int, month time.Month) (*domain.DailySeriesResponse, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySeriesResponse), args.Error(1)
}

type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) Calculate(ctx context.Context, request domain.CalculatePayrollRequest) (*domain.Payroll, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
