package handler

import (
	"net/http"
	"time"

	"github.com/segyhp/gym-backoffice/internal/clock"
	"github.com/segyhp/gym-backoffice/pkg/response"
	"github.com/segyhp/gym-backoffice/pkg/utils"
)

type FinanceHandler struct {
	finance FinanceService
	clock   clock.Clock
}

func NewFinanceHandler(finance FinanceService, clk clock.Clock) *FinanceHandler {
	return &FinanceHandler{finance: finance, clock: clk}
}

// Summary handles GET /finance/summary?month=YYYY-MM
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.month(w, r)
	if !ok {
		return
	}

	summary, err := h.finance.SummaryFor(r.Context(), year, month)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, summary)
}

// Daily handles GET /finance/daily?month=YYYY-MM
func (h *FinanceHandler) Daily(w http.ResponseWriter, r *http.Request) {
	year, month, ok := h.month(w, r)
	if !ok {
		return
	}

	series, err := h.finance.DailySeries(r.Context(), year, month)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, series)
}

// month reads the month query parameter, defaulting to the current month.
func (h *FinanceHandler) month(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := h.clock.Now()

	raw := r.URL.Query().Get("month")
	if raw == "" {
		return now.Year(), now.Month(), true
	}

	year, month, err := utils.ParseMonth(raw, now.Location())
	if err != nil {
		response.BadRequest(w, "month must be formatted as YYYY-MM", err)
		return 0, 0, false
	}
	return year, month, true
}
