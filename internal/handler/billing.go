package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/pkg/response"
)

type BillingHandler struct {
	billing     BillingService
	memberships MembershipService
	location    *time.Location
}

func NewBillingHandler(billing BillingService, memberships MembershipService, location *time.Location) *BillingHandler {
	if location == nil {
		location = time.UTC
	}
	return &BillingHandler{
		billing:     billing,
		memberships: memberships,
		location:    location,
	}
}

type registerPaymentPayload struct {
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   string               `json:"payment_date"`
	PaymentMethod string               `json:"payment_method"`
	Status        domain.PaymentStatus `json:"status"`
	Discount      decimal.Decimal      `json:"discount"`
	Surcharge     decimal.Decimal      `json:"surcharge"`
	Notes         string               `json:"notes"`
}

// RegisterPayment handles POST /memberships/{membershipId}/payments
func (h *BillingHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	membershipID, err := pathUUID(r, "membershipId")
	if err != nil {
		response.BadRequest(w, "Invalid membership ID", err)
		return
	}

	var payload registerPaymentPayload
	if err := decodeJSON(r, &payload); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	paymentDate, err := parseDate(payload.PaymentDate, h.location)
	if err != nil {
		response.BadRequest(w, "Invalid payment date", err)
		return
	}

	result, err := h.billing.RegisterPaymentByID(r.Context(), membershipID, domain.RegisterPaymentRequest{
		Amount:        payload.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: payload.PaymentMethod,
		Status:        payload.Status,
		Discount:      payload.Discount,
		Surcharge:     payload.Surcharge,
		Notes:         payload.Notes,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, result)
}

// PaymentHistory handles GET /memberships/{membershipId}/payments
func (h *BillingHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	membershipID, err := pathUUID(r, "membershipId")
	if err != nil {
		response.BadRequest(w, "Invalid membership ID", err)
		return
	}

	payments, err := h.billing.PaymentHistory(r.Context(), membershipID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payments)
}

// Alerts handles GET /memberships/alerts?window=N
func (h *BillingHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window")
	if err != nil {
		response.BadRequest(w, "Invalid window", err)
		return
	}

	alerts, err := h.memberships.Alerts(r.Context(), window)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, alerts)
}

// Counts handles GET /memberships/counts?window=N
func (h *BillingHandler) Counts(w http.ResponseWriter, r *http.Request) {
	window, err := queryInt(r, "window")
	if err != nil {
		response.BadRequest(w, "Invalid window", err)
		return
	}

	counts, err := h.memberships.Counts(r.Context(), window)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, counts)
}
