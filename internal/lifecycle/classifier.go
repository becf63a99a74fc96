// Package lifecycle classifies memberships by their end date relative to a
// reference instant.
package lifecycle

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

// DefaultWarningWindowDays is used when a caller passes a non-positive window.
const DefaultWarningWindowDays = 7

// State is a membership's position in the renewal cycle.
type State string

const (
	StateActive       State = "ACTIVE"
	StateExpiringSoon State = "EXPIRING_SOON"
	StateExpired      State = "EXPIRED"
)

// Classification is the lifecycle state of a membership. For expired
// memberships Days counts days since expiry (at least 1); otherwise it is
// the number of days remaining, 0 meaning due today.
type Classification struct {
	State State `json:"state"`
	Days  int   `json:"days"`
}

// Classify places endDate relative to now. Day counts use a calendar-day
// ceiling so that a few hours left still counts as one day.
func Classify(endDate, now time.Time, warningWindowDays int) Classification {
	if warningWindowDays <= 0 {
		warningWindowDays = DefaultWarningWindowDays
	}

	if endDate.Before(now) {
		days := utils.CeilDays(now.Sub(endDate))
		if days < 1 {
			days = 1
		}
		return Classification{State: StateExpired, Days: days}
	}

	remaining := utils.CeilDays(endDate.Sub(now))
	if remaining <= warningWindowDays {
		return Classification{State: StateExpiringSoon, Days: remaining}
	}

	return Classification{State: StateActive, Days: remaining}
}

// ClassifyMembership classifies m by its end date.
func ClassifyMembership(m domain.Membership, now time.Time, warningWindowDays int) Classification {
	return Classify(m.EndDate, now, warningWindowDays)
}

// Counts tallies memberships per state.
type Counts struct {
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// Summarize counts memberships per state at now.
func Summarize(memberships []domain.Membership, now time.Time, warningWindowDays int) Counts {
	var c Counts
	for _, m := range memberships {
		switch ClassifyMembership(m, now, warningWindowDays).State {
		case StateExpired:
			c.Expired++
		case StateExpiringSoon:
			c.ExpiringSoon++
		default:
			c.Active++
		}
	}
	return c
}

// Alert is a membership that needs attention at the renewal desk.
type Alert struct {
	MembershipID uuid.UUID  `json:"membership_id"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	EndDate      time.Time  `json:"end_date"`
	Classification
}

// Alerts returns expired and expiring-soon memberships, most urgent first:
// expired ones by days overdue (longest first), then expiring ones by days
// remaining (soonest first).
func Alerts(memberships []domain.Membership, now time.Time, warningWindowDays int) []Alert {
	alerts := make([]Alert, 0)
	for _, m := range memberships {
		c := ClassifyMembership(m, now, warningWindowDays)
		if c.State == StateActive {
			continue
		}
		alerts = append(alerts, Alert{
			MembershipID:   m.ID,
			UserID:         m.UserID,
			EndDate:        m.EndDate,
			Classification: c,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.State != b.State {
			return a.State == StateExpired
		}
		if a.State == StateExpired {
			return a.Days > b.Days
		}
		return a.Days < b.Days
	})

	return alerts
}
