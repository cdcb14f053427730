package handlers

import (
	"net/http"

	apperrors "pharmatrack-backend/internal/errors"
	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DrugHandler handles HTTP requests for inventory operations
type DrugHandler struct {
	drugService service.DrugServiceInterface
}

// NewDrugHandler creates a new drug handler
func NewDrugHandler(drugService service.DrugServiceInterface) *DrugHandler {
	return &DrugHandler{drugService: drugService}
}

// CreateDrug handles POST /drugs
// @Summary Add a drug to the acting tenant's inventory
// @Tags drugs
// @Accept json
// @Produce json
// @Param body body service.CreateDrugRequest true "Drug details"
// @Success 201 {object} service.DrugResponse "Drug created"
// @Failure 400 {object} map[string]interface{} "Invalid payload or unknown category"
// @Security BearerAuth
// @Router /drugs [post]
func (h *DrugHandler) CreateDrug(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	drug, err := h.drugService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, drug)
}

// GetDrug handles GET /drugs/:id
// @Summary Get one drug by id
// @Tags drugs
// @Produce json
// @Param id path string true "Drug ID"
// @Success 200 {object} service.DrugResponse "Drug"
// @Failure 404 {object} map[string]interface{} "Drug not found"
// @Security BearerAuth
// @Router /drugs/{id} [get]
func (h *DrugHandler) GetDrug(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drug ID"})
		return
	}

	drug, err := h.drugService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drug)
}

// UpdateDrug handles PUT /drugs/:id
// @Summary Update a drug
// @Tags drugs
// @Accept json
// @Produce json
// @Param id path string true "Drug ID"
// @Param body body service.UpdateDrugRequest true "Fields to change"
// @Success 200 {object} service.DrugResponse "Updated drug"
// @Failure 404 {object} map[string]interface{} "Drug not found"
// @Security BearerAuth
// @Router /drugs/{id} [put]
func (h *DrugHandler) UpdateDrug(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drug ID"})
		return
	}

	var req service.UpdateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	drug, err := h.drugService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drug)
}

// DeleteDrug handles DELETE /drugs/:id
// @Summary Delete a drug
// @Tags drugs
// @Produce json
// @Param id path string true "Drug ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Drug not found"
// @Security BearerAuth
// @Router /drugs/{id} [delete]
func (h *DrugHandler) DeleteDrug(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drug ID"})
		return
	}

	if err := h.drugService.Delete(c.Request.Context(), tenantID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAllRequest carries the password re-confirmation for mass deletion
type deleteAllRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeleteAllDrugs handles DELETE /drugs
// @Summary Delete the tenant's entire inventory (requires password confirmation)
// @Tags drugs
// @Accept json
// @Produce json
// @Param body body deleteAllRequest true "Password confirmation"
// @Success 200 {object} map[string]interface{} "Deletion count"
// @Failure 403 {object} map[string]interface{} "Password confirmation failed"
// @Security BearerAuth
// @Router /drugs [delete]
func (h *DrugHandler) DeleteAllDrugs(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req deleteAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password confirmation is required"})
		return
	}

	deleted, err := h.drugService.DeleteAllForOwner(c.Request.Context(), tenantID, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// SearchDrugs handles GET /drugs
// @Summary Search the tenant's inventory
// @Tags drugs
// @Produce json
// @Param name query string false "Substring matched against name or description"
// @Param category query string false "Category name (case-insensitive)"
// @Param expired query bool false "Only expired (true) or only unexpired (false)"
// @Param expiring_soon query bool false "Only items expiring within the warning window"
// @Param expiration_year query int false "Upper bound year"
// @Param expiration_month query int false "Upper bound month (1-12)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Param sort_by query string false "Sort key: name, expiration or category"
// @Success 200 {object} service.DrugListResponse "Matching drugs"
// @Failure 400 {object} map[string]interface{} "Invalid filter, category or sort key"
// @Security BearerAuth
// @Router /drugs [get]
func (h *DrugHandler) SearchDrugs(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	result, err := h.drugService.Search(c.Request.Context(), tenantID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetStatistics handles GET /drugs/statistics
// @Summary Inventory statistics for the acting tenant
// @Tags drugs
// @Produce json
// @Success 200 {object} service.StatisticsResponse "Statistics"
// @Security BearerAuth
// @Router /drugs/statistics [get]
func (h *DrugHandler) GetStatistics(c *gin.Context) {
	tenantID, ok := auth.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	stats, err := h.drugService.Statistics(c.Request.Context(), tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// respondServiceError maps the error taxonomy onto HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsSendFailure(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
