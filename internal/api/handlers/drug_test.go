package handlers_test

import (
	"bytes"
	"encoding/json"
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

// DrugHandlerTestSuite defines the test suite for DrugHandler
type DrugHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockDrugSv *mocks.MockDrugServiceInterface
	handler    *handlers.DrugHandler
	router     *gin.Engine
	tenantID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DrugHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDrugSv = mocks.NewMockDrugServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDrugHandler(suite.mockDrugSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	// Stand-in for the auth middleware: inject the tenant identity
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID.String())
		c.Next()
	})
	suite.router.GET("/drugs", suite.handler.SearchDrugs)
	suite.router.POST("/drugs", suite.handler.CreateDrug)
	suite.router.DELETE("/drugs", suite.handler.DeleteAllDrugs)
	suite.router.GET("/drugs/statistics", suite.handler.GetStatistics)
	suite.router.GET("/drugs/:id", suite.handler.GetDrug)
	suite.router.PUT("/drugs/:id", suite.handler.UpdateDrug)
	suite.router.DELETE("/drugs/:id", suite.handler.DeleteDrug)
}

// TearDownTest cleans up after each test
func (suite *DrugHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDrug tests the create endpoint
func (suite *DrugHandlerTestSuite) TestCreateDrug() {
	expiresAt := time.Now().Add(60 * 24 * time.Hour).UTC().Truncate(time.Second)
	resp := &service.DrugResponse{
		ID:        uuid.New(),
		Name:      "Aspirin",
		Category:  "PILLS",
		ExpiresAt: expiresAt,
	}

	suite.mockDrugSv.EXPECT().
		Create(gomock.Any(), suite.tenantID, gomock.Any()).
		Return(resp, nil).
		Times(1)

	body, _ := json.Marshal(map[string]any{
		"name":       "Aspirin",
		"category":   "PILLS",
		"expires_at": expiresAt,
	})
	req := httptest.NewRequest(http.MethodPost, "/drugs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.DrugResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Aspirin", got.Name)
	assert.Equal(suite.T(), "PILLS", got.Category)
}

// TestCreateDrugInvalidBody tests malformed payload handling
func (suite *DrugHandlerTestSuite) TestCreateDrugInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/drugs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetDrugNotFound tests the 404 mapping
func (suite *DrugHandlerTestSuite) TestGetDrugNotFound() {
	id := uuid.New()
	suite.mockDrugSv.EXPECT().
		GetByID(gomock.Any(), suite.tenantID, id).
		Return(nil, apperrors.ErrDrugNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/drugs/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetDrugInvalidID tests uuid validation
func (suite *DrugHandlerTestSuite) TestGetDrugInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/drugs/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSearchDrugsPassesQuery tests query binding
func (suite *DrugHandlerTestSuite) TestSearchDrugsPassesQuery() {
	suite.mockDrugSv.EXPECT().
		Search(gomock.Any(), suite.tenantID, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, req service.SearchRequest) (*service.DrugListResponse, error) {
			assert.Equal(suite.T(), "aspirin", req.Name)
			assert.NotNil(suite.T(), req.Expired)
			assert.True(suite.T(), *req.Expired)
			assert.Equal(suite.T(), 2, req.Page)
			return &service.DrugListResponse{Page: 2, PageSize: 20}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/drugs?name=aspirin&expired=true&page=2", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestSearchDrugsValidationError tests the 400 mapping for bad filters
func (suite *DrugHandlerTestSuite) TestSearchDrugsValidationError() {
	suite.mockDrugSv.EXPECT().
		Search(gomock.Any(), suite.tenantID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("sort", "invalid sort key: price")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/drugs?sort_by=price", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteDrug tests the delete endpoint
func (suite *DrugHandlerTestSuite) TestDeleteDrug() {
	id := uuid.New()
	suite.mockDrugSv.EXPECT().
		Delete(gomock.Any(), suite.tenantID, id).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/drugs/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteAllDrugsRequiresPassword tests the confirmation guard
func (suite *DrugHandlerTestSuite) TestDeleteAllDrugsRequiresPassword() {
	req := httptest.NewRequest(http.MethodDelete, "/drugs", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteAllDrugsReauthFailure tests the 403 mapping
func (suite *DrugHandlerTestSuite) TestDeleteAllDrugsReauthFailure() {
	suite.mockDrugSv.EXPECT().
		DeleteAllForOwner(gomock.Any(), suite.tenantID, "wrong").
		Return(int64(0), apperrors.ErrReauthFailed).
		Times(1)

	body, _ := json.Marshal(map[string]string{"password": "wrong"})
	req := httptest.NewRequest(http.MethodDelete, "/drugs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestGetStatistics tests the statistics endpoint
func (suite *DrugHandlerTestSuite) TestGetStatistics() {
	suite.mockDrugSv.EXPECT().
		Statistics(gomock.Any(), suite.tenantID).
		Return(&service.StatisticsResponse{Total: 5, Expired: 2, Active: 3}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/drugs/statistics", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.StatisticsResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(5), got.Total)
	assert.Equal(suite.T(), int64(3), got.Active)
}

// TestDrugHandlerTestSuite runs the test suite
func TestDrugHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DrugHandlerTestSuite))
}
