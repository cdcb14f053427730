package routes

import (
	"time"

	"pharmatrack-backend/internal/api/handlers"
	"pharmatrack-backend/internal/api/middleware"
	"pharmatrack-backend/internal/auth"
	"pharmatrack-backend/internal/cache"
	"pharmatrack-backend/internal/config"
	"pharmatrack-backend/internal/repository"
	"pharmatrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. It returns the
// router together with the alert service so the caller can hand the batch
// run to the daily scheduler.
func SetupRoutes(db *gorm.DB, store cache.Store, cfg *config.Config) (*gin.Engine, service.AlertServiceInterface) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	drugRepo := repository.NewDrugRepository(db)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	soonWindow := time.Duration(cfg.ExpiringSoonDays) * 24 * time.Hour
	sendTimeout := time.Duration(cfg.AlertSendTimeoutSec) * time.Second
	mailer := service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Initialize services
	drugService := service.NewDrugService(drugRepo, categoryRepo, userRepo, store, mailer, validator, soonWindow)
	alertService := service.NewAlertService(drugService, drugRepo, store, soonWindow, sendTimeout)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, cfg)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	drugHandler := handlers.NewDrugHandler(drugService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	userHandler := handlers.NewUserHandler(userService)
	alertsHandler := handlers.NewAlertsHandler(alertService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Drug inventory routes
		drugs := v1.Group("/drugs")
		{
			drugs.GET("", drugHandler.SearchDrugs)
			drugs.POST("", drugHandler.CreateDrug)
			drugs.DELETE("", drugHandler.DeleteAllDrugs)
			drugs.GET("/statistics", drugHandler.GetStatistics)
			drugs.GET("/:id", drugHandler.GetDrug)
			drugs.PUT("/:id", drugHandler.UpdateDrug)
			drugs.DELETE("/:id", drugHandler.DeleteDrug)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
		}

		// Profile routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.Me)
			users.PUT("/me/alerts", userHandler.SetAlertPreference)
		}

		// Alert routes
		alerts := v1.Group("/alerts")
		{
			alerts.POST("/send", alertsHandler.SendMyAlerts)
			alerts.POST("/send-all", authMiddleware.RequireOperator(), alertsHandler.SendAllAlerts)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, alertService
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
