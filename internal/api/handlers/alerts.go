package handlers

import (
	"net/http"
	"strconv"
	"time"

	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AlertsHandler handles HTTP requests for expiry alert triggers
type AlertsHandler struct {
	alertService service.AlertServiceInterface
}

// NewAlertsHandler creates a new alerts handler
func NewAlertsHandler(alertService service.AlertServiceInterface) *AlertsHandler {
	return &AlertsHandler{alertService: alertService}
}

// SendMyAlerts handles POST /alerts/send
// @Summary Send a consolidated expiry alert for the acting tenant's items
// @Description On-demand variant of the scheduled alert run; send failures
// @Description propagate to the caller instead of being swallowed.
// @Tags alerts
// @Produce json
// @Param days query int false "Warning horizon in days" default(30)
// @Success 200 {object} service.AlertResult "Outcome"
// @Failure 502 {object} map[string]interface{} "Email transport failure"
// @Security BearerAuth
// @Router /alerts/send [post]
func (h *AlertsHandler) SendMyAlerts(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	// An absent days parameter means the configured window; days=0 is a
	// valid request for items already due.
	horizon := service.DefaultHorizon
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter: " + daysStr})
			return
		}
		horizon = time.Duration(days) * 24 * time.Hour
	}

	result, err := h.alertService.SendAlertsForTenant(c.Request.Context(), tenantID, horizon)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SendAllAlerts handles POST /alerts/send-all (operator only)
// @Summary Run the all-tenants alert batch
// @Description Normally fired by the daily schedule; exposed for operators.
// @Tags alerts
// @Produce json
// @Success 200 {object} service.BatchAlertResult "Run summary"
// @Failure 403 {object} map[string]interface{} "Operator access required"
// @Security BearerAuth
// @Router /alerts/send-all [post]
func (h *AlertsHandler) SendAllAlerts(c *gin.Context) {
	result, err := h.alertService.SendAlertsForAllTenants(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
