package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface, metricsCollector services.MetricsRecorderInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		metricsCollector: metricsCollector,
	}
}

// GetDashboard assembles the dashboard overview for the authenticated user
// @Summary Get dashboard
// @Description Retrieve net worth, current month income and expense with month-over-month change, all-time totals, weekly activity, and recent transactions
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardSummary "Dashboard overview"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	startTime := time.Now()

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.dashboardService.GetDashboard(userID, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("dashboard_request", nil)
		h.metricsCollector.RecordProcessingTime("dashboard_build", time.Since(startTime))

		netWorth, _ := summary.NetWorth.Float64()
		h.metricsCollector.RecordGauge("net_worth", netWorth, nil)
	}

	return c.JSON(http.StatusOK, summary)
}
