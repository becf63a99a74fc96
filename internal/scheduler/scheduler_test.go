package scheduler

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/gym-backoffice/internal/config"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
	"github.com/segyhp/gym-backoffice/internal/mocks"
	"github.com/segyhp/gym-backoffice/pkg/logger"
)

func TestSweepExpirations(t *testing.T) {
	var buf bytes.Buffer
	memberships := &mocks.MockMembershipService{}
	jobs := NewJobs(memberships, &mocks.MockSummaryRefresher{}, 7, logger.New(logger.Config{Format: "text", Output: &buf}))

	memberships.On("Alerts", mock.Anything, 7).Return([]lifecycle.Alert{
		{MembershipID: uuid.New(), Classification: lifecycle.Classification{State: lifecycle.StateExpired, Days: 3}},
		{MembershipID: uuid.New(), Classification: lifecycle.Classification{State: lifecycle.StateExpired, Days: 1}},
		{MembershipID: uuid.New(), Classification: lifecycle.Classification{State: lifecycle.StateExpiringSoon, Days: 2}},
	}, nil)

	require.NoError(t, jobs.SweepExpirations(context.Background()))
	assert.Contains(t, buf.String(), "expired=2")
	assert.Contains(t, buf.String(), "expiring_soon=1")
}

func TestSweepExpirations_Error(t *testing.T) {
	memberships := &mocks.MockMembershipService{}
	jobs := NewJobs(memberships, &mocks.MockSummaryRefresher{}, 7, logger.Nop())
	memberships.On("Alerts", mock.Anything, 7).Return(nil, errors.New("db down"))

	assert.Error(t, jobs.SweepExpirations(context.Background()))
}

func TestWarmSummaryCache(t *testing.T) {
	refresher := &mocks.MockSummaryRefresher{}
	jobs := NewJobs(&mocks.MockMembershipService{}, refresher, 7, logger.Nop())
	refresher.On("Refresh", mock.Anything).Return(&domain.FinancialSummary{
		Year:          2024,
		Month:         time.June,
		MonthlyIncome: decimal.NewFromInt(220000),
	}, nil)

	require.NoError(t, jobs.WarmSummaryCache(context.Background()))
	refresher.AssertExpectations(t)
}

func TestNew_RegistersJobs(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{
			ExpirationSweep: "0 0 6 * * *",
			CacheWarmup:     "0 */15 * * * *",
			Timezone:        "Asia/Jakarta",
		},
	}
	jobs := NewJobs(&mocks.MockMembershipService{}, &mocks.MockSummaryRefresher{}, 7, logger.Nop())

	c, err := New(cfg, jobs)

	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	assert.Equal(t, "Asia/Jakarta", c.Location().String())
}

func TestNew_InvalidCronExpression(t *testing.T) {
	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{ExpirationSweep: "daily", CacheWarmup: "0 */15 * * * *"},
	}

	_, err := New(cfg, NewJobs(&mocks.MockMembershipService{}, &mocks.MockSummaryRefresher{}, 7, logger.Nop()))

	assert.Error(t, err)
}
