package handlers

import (
	"net/http"

	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for the tenant profile
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me handles GET /users/me
// @Summary Get the acting tenant's profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse "Profile"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetByID(tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// alertPreferenceRequest toggles expiry alerts for the acting tenant
type alertPreferenceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetAlertPreference handles PUT /users/me/alerts
// @Summary Enable or disable expiry alerts for the acting tenant
// @Tags users
// @Accept json
// @Produce json
// @Param body body alertPreferenceRequest true "Preference"
// @Success 200 {object} service.UserResponse "Updated profile"
// @Security BearerAuth
// @Router /users/me/alerts [put]
func (h *UserHandler) SetAlertPreference(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req alertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.userService.SetAlertsEnabled(tenantID, *req.Enabled)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
