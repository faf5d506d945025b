package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CreditHandler handles credit card insight HTTP requests
type CreditHandler struct {
	creditService    services.CreditInsightServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewCreditHandler creates a new credit insight handler
func NewCreditHandler(creditService services.CreditInsightServiceInterface, metricsCollector services.MetricsRecorderInterface) *CreditHandler {
	return &CreditHandler{
		creditService:    creditService,
		metricsCollector: metricsCollector,
	}
}

// GetCreditSummary retrieves the fleet-wide credit card overview
// @Summary Get credit summary
// @Description Retrieve per-card utilization with status bands, shared limit pool stats, and fleet totals. Pooled limits count once.
// @Tags Credit
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CreditSummary "Credit card overview"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /credit/summary [get]
func (h *CreditHandler) GetCreditSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.creditService.GetCreditSummary(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCreditAlerts retrieves high-utilization and upcoming-due alerts
// @Summary Get credit alerts
// @Description Retrieve utilization alerts for opted-in cards over their threshold and payment due dates within the next seven days, soonest first
// @Tags Credit
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.CreditAlertsOverview "Active credit alerts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /credit/alerts [get]
func (h *CreditHandler) GetCreditAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	alerts, err := h.creditService.GetCreditAlerts(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	if h.metricsCollector != nil {
		if len(alerts.HighUtilization) > 0 {
			h.metricsCollector.IncrementCounter("credit_alert_emitted", map[string]string{"alert_type": "high_utilization"})
		}
		if len(alerts.UpcomingDue) > 0 {
			h.metricsCollector.IncrementCounter("credit_alert_emitted", map[string]string{"alert_type": "upcoming_due"})
		}
	}

	return c.JSON(http.StatusOK, alerts)
}
