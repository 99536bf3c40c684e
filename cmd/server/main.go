package main

import (
	"log"

	"nexodus-admin-backend/internal/api/routes"
	"nexodus-admin-backend/internal/config"
	"nexodus-admin-backend/internal/database"
	"nexodus-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "nexodus-admin-backend/docs" // This is needed for swag
)

//	@title			Nexodus Admin Backend API
//	@version		1.0
//	@description	Backend for the nexodus admin console. Renders the invitation and organization screens over the nexodus API and carries the console's notification feed.

//	@contact.name	Nexodus Maintainers
//	@contact.url	https://github.com/nexodus-io/nexodus

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the nexodus access token.

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

	// Notification feed storage
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithField("api_base_url", cfg.APIBaseURL).Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
