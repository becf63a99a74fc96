package service

import (
	"context"

	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/internal/lifecycle"
	"github.com/segyhp/gym-backoffice/internal/repository"
	customError "github.com/segyhp/gym-backoffice/pkg/errors"
)

type MembershipService struct {
	memberships   repository.MembershipRepository
	clock         clock.Clock
	defaultWindow int
}

// NewMembershipService uses defaultWindow whenever a caller passes a non-positive window.
func NewMembershipService(memberships repository.MembershipRepository, clk clock.Clock, defaultWindow int) *MembershipService {
	return &MembershipService{
		memberships:   memberships,
		clock:         clk,
		defaultWindow: defaultWindow,
	}
}

// Alerts lists expired and expiring-soon memberships, most urgent first.
func (s *MembershipService) Alerts(ctx context.Context, windowDays int) ([]lifecycle.Alert, error) {
	memberships, err := s.memberships.List(ctx)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return lifecycle.Alerts(memberships, s.clock.Now(), s.window(windowDays)), nil
}

// Counts returns the number of memberships per lifecycle state.
func (s *MembershipService) Counts(ctx context.Context, windowDays int) (lifecycle.Counts, error) {
	memberships, err := s.memberships.List(ctx)
	if err != nil {
		return lifecycle.Counts{}, customError.WrapDatabaseError(err)
	}
	return lifecycle.Summarize(memberships, s.clock.Now(), s.window(windowDays)), nil
}

func (s *MembershipService) window(days int) int {
	if days > 0 {
		return days
	}
	return s.defaultWindow
}
