package handler

import (
	"net/http"

	"github.com/segyhp/gym-backoffice/internal/domain"
	"github.com/segyhp/gym-backoffice/pkg/response"
)

type PayrollHandler struct {
	payroll PayrollService
}

func NewPayrollHandler(payroll PayrollService) *PayrollHandler {
	return &PayrollHandler{payroll: payroll}
}

// Calculate handles POST /payrolls
func (h *PayrollHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var request domain.CalculatePayrollRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	payroll, err := h.payroll.Calculate(r.Context(), request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payroll)
}
