package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/gym-backoffice/internal/cache"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/events"
)

type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context, year int, month time.Month) (*domain.FinancialSummary, bool, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Bool(1), args.Error(2)
}

func (m *MockSummaryCache) Set(ctx context.Context, summary *domain.FinancialSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) Delete(ctx context.Context, periods ...cache.Period) error {
	args := m.Called(ctx, periods)
	return args.Error(0)
}

type MockRenewalPublisher struct {
	mock.Mock
}

func (m *MockRenewalPublisher) PublishRenewed(ctx context.Context, evt events.MembershipRenewed) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MockSummaryInvalidator struct {
	mock.Mock
}

func (m *MockSummaryInvalidator) Invalidate(ctx context.Context, year int, month time.Month) error {
	args := m.Called(ctx, year, month)
	return args.Error(0)
}

type MockSummaryRefresher struct {
	mock.Mock
}

func (m *MockSummaryRefresher) Refresh(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}
