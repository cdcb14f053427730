package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets the tenant context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		tenantID, err := claims.TenantID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid tenant identity in token"})
			c.Abort()
			return
		}

		c.Set("tenant_id", tenantID.String())
		c.Set("email", claims.Email)
		c.Set("operator", claims.Operator)
		c.Set("auth_claims", claims)

		// Services only see c.Request.Context(), so the identity has to
		// live there too for log lines to carry the tenant.
		ctx := context.WithValue(c.Request.Context(), "tenant_id", tenantID.String())
		ctx = context.WithValue(ctx, "email", claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireOperator allows only operator accounts through. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if operator, ok := c.Get("operator"); !ok || operator != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "Operator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// TenantID extracts the authenticated tenant id from the gin context
func TenantID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("tenant_id")
	if !ok {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
