package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DashboardHandlerSuite defines the test suite for DashboardHandler
type DashboardHandlerSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockService      *service_mocks.MockDashboardServiceInterface
	metricsCollector *service_mocks.MockMetricsRecorderInterface
	handler          *DashboardHandler
	echo             *echo.Echo
	testUserID       uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *DashboardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.metricsCollector = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockService, s.metricsCollector)

	s.echo = echo.New()
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *DashboardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardHandlerSuite runs the test suite
func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

func (s *DashboardHandlerSuite) TestGetDashboard_Success() {
	summary := &models.DashboardSummary{
		NetWorth:       decimal.NewFromFloat(12345.67),
		MonthlyIncome:  decimal.NewFromInt(4200),
		MonthlyExpense: decimal.NewFromFloat(1880.25),
		WeeklyActivity: []models.DailyActivityItem{},
		RecentActivity: []models.RecentActivityItem{},
	}

	s.mockService.EXPECT().
		GetDashboard(s.testUserID, gomock.Any()).
		Return(summary, nil)
	s.metricsCollector.EXPECT().IncrementCounter("dashboard_request", nil)
	s.metricsCollector.EXPECT().RecordProcessingTime("dashboard_build", gomock.Any())
	s.metricsCollector.EXPECT().RecordGauge("net_worth", 12345.67, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	s.NoError(s.handler.GetDashboard(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp models.DashboardSummary
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.NetWorth.Equal(decimal.NewFromFloat(12345.67)))
	s.True(resp.MonthlyIncome.Equal(decimal.NewFromInt(4200)))
}

func (s *DashboardHandlerSuite) TestGetDashboard_MissingAuth() {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.GetDashboard(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
