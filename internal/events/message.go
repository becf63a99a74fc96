package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
)

// RoutingKeyMembershipRenewed is used for every renewal notification.
const RoutingKeyMembershipRenewed = "membership.renewed"

// MembershipRenewed is published after a payment moved a membership's expiration.
type MembershipRenewed struct {
	MembershipID      uuid.UUID       `json:"membership_id"`
	PaymentID         uuid.UUID       `json:"payment_id"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentDate       time.Time       `json:"payment_date"`
	NewExpirationDate time.Time       `json:"new_expiration_date"`
	Timestamp         time.Time       `json:"timestamp"`
}

func NewMembershipRenewed(payment *domain.MembershipPayment, now time.Time) MembershipRenewed {
	return MembershipRenewed{
		MembershipID:      payment.MembershipID,
		PaymentID:         payment.ID,
		Amount:            payment.Amount,
		PaymentDate:       payment.PaymentDate,
		NewExpirationDate: payment.NewExpirationDate,
		Timestamp:         now,
	}
}

func (m MembershipRenewed) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
