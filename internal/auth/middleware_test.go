package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/config"
	"pharmatrack-backend/internal/database/models"
	"pharmatrack-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// TestRequireAuthPropagatesTenantToRequestContext verifies that the
// identity set by the middleware is visible to code that only receives
// c.Request.Context(), like the service-layer logger.
func TestRequireAuthPropagatesTenantToRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authService := auth.NewAuthService(mocks.NewMockUserRepositoryInterface(ctrl), &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	})
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "pharmacist@test.com",
	}
	token, err := authService.GenerateToken(user)
	assert.NoError(t, err)

	var ctxTenant, ctxEmail any
	router := gin.New()
	router.Use(auth.NewAuthMiddleware(authService).RequireAuth())
	router.GET("/whoami", func(c *gin.Context) {
		ctxTenant = c.Request.Context().Value("tenant_id")
		ctxEmail = c.Request.Context().Value("email")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID.String(), ctxTenant)
	assert.Equal(t, "pharmacist@test.com", ctxEmail)
}
