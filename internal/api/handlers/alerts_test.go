package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmatrack-backend/internal/api/handlers"
	apperrors "pharmatrack-backend/internal/errors"
	"pharmatrack-backend/internal/mocks"
	"pharmatrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AlertsHandlerTestSuite defines the test suite for AlertsHandler
type AlertsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAlertSv *mocks.MockAlertServiceInterface
	router      *gin.Engine
	tenantID    uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AlertsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAlertSv = mocks.NewMockAlertServiceInterface(suite.ctrl)
	handler := handlers.NewAlertsHandler(suite.mockAlertSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	// Stand-in for the auth middleware: inject the tenant identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID.String())
		c.Next()
	})
	suite.router.POST("/alerts/send", handler.SendMyAlerts)
	suite.router.POST("/alerts/send-all", handler.SendAllAlerts)
}

// TearDownTest cleans up after each test
func (suite *AlertsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSendMyAlertsDefaultHorizon tests that no days param asks for the
// configured window
func (suite *AlertsHandlerTestSuite) TestSendMyAlertsDefaultHorizon() {
	suite.mockAlertSv.EXPECT().
		SendAlertsForTenant(gomock.Any(), suite.tenantID, service.DefaultHorizon).
		Return(&service.AlertResult{Sent: true, ItemCount: 2}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/alerts/send", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestSendMyAlertsZeroDays tests that days=0 is passed through as a zero
// horizon, not swapped for the default window
func (suite *AlertsHandlerTestSuite) TestSendMyAlertsZeroDays() {
	suite.mockAlertSv.EXPECT().
		SendAlertsForTenant(gomock.Any(), suite.tenantID, time.Duration(0)).
		Return(&service.AlertResult{Sent: true, ItemCount: 1}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/alerts/send?days=0", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestSendMyAlertsCustomDays tests the days query parameter
func (suite *AlertsHandlerTestSuite) TestSendMyAlertsCustomDays() {
	suite.mockAlertSv.EXPECT().
		SendAlertsForTenant(gomock.Any(), suite.tenantID, 7*24*time.Hour).
		Return(&service.AlertResult{SkippedReason: "no qualifying items"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/alerts/send?days=7", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestSendMyAlertsInvalidDays tests rejecting a malformed days param
func (suite *AlertsHandlerTestSuite) TestSendMyAlertsInvalidDays() {
	req := httptest.NewRequest(http.MethodPost, "/alerts/send?days=soon", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSendMyAlertsSendFailure tests the 502 mapping
func (suite *AlertsHandlerTestSuite) TestSendMyAlertsSendFailure() {
	suite.mockAlertSv.EXPECT().
		SendAlertsForTenant(gomock.Any(), suite.tenantID, service.DefaultHorizon).
		Return(nil, apperrors.NewSendFailureError("pharmacist@test.com", errors.New("relay refused connection"))).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/alerts/send", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

// TestSendAllAlerts tests the batch trigger
func (suite *AlertsHandlerTestSuite) TestSendAllAlerts() {
	suite.mockAlertSv.EXPECT().
		SendAlertsForAllTenants(gomock.Any()).
		Return(&service.BatchAlertResult{OwnersScanned: 4, Sent: 3, Skipped: 1}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/alerts/send-all", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestAlertsHandlerTestSuite runs the test suite
func TestAlertsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AlertsHandlerTestSuite))
}
