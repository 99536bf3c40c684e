package routes

import (
	"log"
	"time"

	"nexodus-admin-backend/internal/api/handlers"
	"nexodus-admin-backend/internal/api/middleware"
	"nexodus-admin-backend/internal/auth"
	"nexodus-admin-backend/internal/config"
	"nexodus-admin-backend/internal/repository"
	"nexodus-admin-backend/internal/service"
	"nexodus-admin-backend/internal/upstream"
	"nexodus-admin-backend/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Nexodus API
	apiClient, err := upstream.NewClient(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSec)*time.Second)
	if err != nil {
		log.Fatalf("Failed to create nexodus api client: %v", err)
	}

	// Views
	registry, err := views.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load resource views: %v", err)
	}
	renderer := views.NewRenderer()

	// Repositories
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	recordCache := service.NewRecordCache(cfg.RecordCacheSize, time.Duration(cfg.RecordCacheTTLSec)*time.Second)
	notificationService := service.NewNotificationService(notificationRepo, time.Duration(cfg.NotificationRetentionHours)*time.Hour)
	invitationService := service.NewInvitationService(apiClient, apiClient, registry, renderer, notificationService, recordCache, validator)
	organizationService := service.NewOrganizationService(apiClient, registry, renderer, notificationService, recordCache, validator)

	// Identity
	resolver := auth.NewResolver(apiClient, cfg.IdentityCacheSize, time.Duration(cfg.IdentityCacheTTLSec)*time.Second)
	authMiddleware := auth.NewMiddleware(resolver)

	// Handlers
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database handle: %v", err)
	}
	healthHandler := handlers.NewHealthHandler(sqlDB, Version)
	identityHandler := handlers.NewIdentityHandler()
	viewHandler := handlers.NewViewHandler(registry)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes (no authentication required)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.LoadIdentity())
	{
		v1.GET("/identity", authMiddleware.RequireIdentity(), identityHandler.GetIdentity)

		v1.GET("/views", viewHandler.ListViews)
		v1.GET("/views/:resource/:kind", viewHandler.GetView)

		invitations := v1.Group("/invitations")
		{
			invitations.GET("", invitationHandler.ListInvitations)
			invitations.POST("", authMiddleware.RequireIdentity(), invitationHandler.CreateInvitation)
			invitations.GET("/create", invitationHandler.GetCreateForm)
			invitations.GET("/export", invitationHandler.ExportInvitations)
			invitations.POST("/bulk-delete", invitationHandler.BulkDeleteInvitations)
			invitations.POST("/accept", invitationHandler.AcceptInvitation)
			invitations.GET("/:id", invitationHandler.GetInvitation)
			invitations.DELETE("/:id", invitationHandler.DeleteInvitation)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", authMiddleware.RequireIdentity(), organizationHandler.CreateOrganization)
			organizations.GET("/create", organizationHandler.GetCreateForm)
			organizations.GET("/choices", authMiddleware.RequireIdentity(), organizationHandler.GetChoices)
			organizations.GET("/export", organizationHandler.ExportOrganizations)
			organizations.POST("/bulk-delete", organizationHandler.BulkDeleteOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
		}

		v1.GET("/notifications", authMiddleware.RequireIdentity(), notificationHandler.DrainNotifications)
	}

	return router
}
