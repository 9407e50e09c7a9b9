package main

import (
	"log"

	"duty-portal-backend/internal/api/routes"
	"duty-portal-backend/internal/config"
	"duty-portal-backend/internal/database"
	"duty-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "duty-portal-backend/docs" // This is needed for swag
)

//	@title			Duty Portal Backend API
//	@version		1.0
//	@description	Backend API for the Duty Portal: per-user notification inboxes and duty team management.

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer database.Close(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithField("driver", cfg.DatabaseDriver).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
