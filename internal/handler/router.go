package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/gym-backoffice/pkg/logger"
	"github.com/segyhp/gym-backoffice/pkg/response"
)

type Handlers struct {
	Billing *BillingHandler
	Finance *FinanceHandler
	Payroll *PayrollHandler
	Health  *HealthHandler
}

// NewRouter registers every route under /api/v1 plus the health checks.
// CORS wraps the whole router so preflight requests never reach mux.
func NewRouter(h Handlers, log *logger.Logger, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	router.Use(response.LoggingMiddleware(log))

	// Health check
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/memberships/alerts", h.Billing.Alerts).Methods(http.MethodGet)
	api.HandleFunc("/memberships/counts", h.Billing.Counts).Methods(http.MethodGet)
	api.HandleFunc("/memberships/{membershipId}/payments", h.Billing.RegisterPayment).Methods(http.MethodPost)
	api.HandleFunc("/memberships/{membershipId}/payments", h.Billing.PaymentHistory).Methods(http.MethodGet)

	api.HandleFunc("/finance/summary", h.Finance.Summary).Methods(http.MethodGet)
	api.HandleFunc("/finance/daily", h.Finance.Daily).Methods(http.MethodGet)

	api.HandleFunc("/payrolls", h.Payroll.Calculate).Methods(http.MethodPost)

	return response.CORSMiddleware(allowedOrigins)(router)
}
