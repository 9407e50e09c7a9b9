package routes

import (
	"fmt"

	"duty-portal-backend/internal/api/handlers"
	"duty-portal-backend/internal/api/middleware"
	"duty-portal-backend/internal/auth"
	"duty-portal-backend/internal/config"
	"duty-portal-backend/internal/logger"
	"duty-portal-backend/internal/repository"
	"duty-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Initialize repositories
	notificationRepo := repository.NewNotificationRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Initialize services
	notificationService := service.NewNotificationService(notificationRepo)
	teamService := service.NewTeamService(teamRepo, validator)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/auth/validate", authHandler.ValidateToken)

	v1 := router.Group("/api/v1")
	{
		// Notification routes act on the authenticated caller's inbox
		notifications := v1.Group("/notifications", authMiddleware.RequireAuth())
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
			notifications.PATCH("/:id/unread", notificationHandler.MarkAsUnread)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Team routes are public unless role enforcement is switched on for mutations
		var guard []gin.HandlerFunc
		if cfg.TeamRoleEnforcement {
			guard = []gin.HandlerFunc{authMiddleware.RequireAuth(), auth.RequireRoles(auth.TeamAdminPolicy())}
			logger.New().Info("team role enforcement enabled")
		}

		teams := v1.Group("/team")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", withGuard(guard, teamHandler.CreateTeam)...)
			teams.PUT("/:id", withGuard(guard, teamHandler.UpdateTeam)...)
			teams.DELETE("/:id", withGuard(guard, teamHandler.DeleteTeam)...)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
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

func withGuard(guard []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(guard)+1)
	chain = append(chain, guard...)
	return append(chain, handler)
}
