package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockMembershipRepository) List(ctx context.Context) ([]domain.Membership, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Membership), args.Error(1)
}

func (m *MockMembershipRepository) UpdateExpiration(ctx context.Context, id uuid.UUID, endDate, paymentDate time.Time) error {
	args := m.Called(ctx, id, endDate, paymentDate)
	return args.Error(0)
}

type MockMembershipPaymentRepository struct {
	mock.Mock
}

func (m *MockMembershipPaymentRepository) Create(ctx context.Context, payment *domain.MembershipPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockMembershipPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMembershipPaymentRepository) ListByMembership(ctx context.Context, membershipID uuid.UUID) ([]domain.MembershipPayment, error) {
	args := m.Called(ctx, membershipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MembershipPayment), args.Error(1)
}

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

type MockAdditionalIncomeRepository struct {
	mock.Mock
}

func (m *MockAdditionalIncomeRepository) List(ctx context.Context) ([]domain.AdditionalIncome, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdditionalIncome), args.Error(1)
}

func (m *MockAdditionalIncomeRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.AdditionalIncome, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdditionalIncome), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListSimple(ctx context.Context) ([]domain.SimpleExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimpleExpense), args.Error(1)
}

func (m *MockExpenseRepository) ListDetailed(ctx context.Context) ([]domain.DetailedExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetailedExpense), args.Error(1)
}

type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) List(ctx context.Context) ([]domain.Payroll, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) GetByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) (*domain.Payroll, error) {
	args := m.Called(ctx, trainerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) Upsert(ctx context.Context, payroll *domain.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

type MockHoursWorkedRepository struct {
	mock.Mock
}

func (m *MockHoursWorkedRepository) ListByTrainerPeriod(ctx context.Context, trainerID uuid.UUID, month, year int) ([]domain.HoursWorked, error) {
	args := m.Called(ctx, trainerID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HoursWorked), args.Error(1)
}

type MockTrainerRepository struct {
	mock.Mock
}

func (m *MockTrainerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}
