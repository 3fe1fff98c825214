// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/config"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/handlers"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/middleware"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/services"
	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	propertyService := services.NewPropertyService(db)
	faqService := services.NewFAQService(db)
	siteVisitService := services.NewSiteVisitService(db)
	favoriteService := services.NewFavoriteService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, storageService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, faqService)
	faqHandler := handlers.NewFAQHandler(faqService)
	siteVisitHandler := handlers.NewSiteVisitHandler(siteVisitService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	adminHandler := handlers.NewAdminHandler(adminService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/me", middleware.AuthRequired(), authHandler.UpdateProfile)
			auth.POST("/me/avatar", middleware.AuthRequired(), middleware.UploadRateLimit(), authHandler.UploadAvatar)
		}

		// Property routes (public catalog)
		properties := v1.Group("/properties")
		{
			properties.GET("", middleware.OptionalAuth(), propertyHandler.GetProperties)
			properties.GET("/:id", middleware.OptionalAuth(), propertyHandler.GetProperty)
			properties.GET("/:id/faqs", propertyHandler.GetPropertyFAQs)
		}

		// Site visit submission (public form)
		v1.POST("/site-visits", middleware.SiteVisitRateLimit(), siteVisitHandler.SubmitSiteVisit)

		// Favorites (authenticated)
		favorites := v1.Group("/favorites")
		favorites.Use(middleware.AuthRequired())
		{
			favorites.GET("", favoriteHandler.GetFavorites)
			favorites.POST("/:propertyId/toggle", favoriteHandler.ToggleFavorite)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLogMiddleware(db))
		{
			// Dashboard
			admin.GET("/dashboard/stats", adminHandler.GetDashboardStats)

			// Property management
			adminProperties := admin.Group("/properties")
			{
				adminProperties.POST("", propertyHandler.CreateProperty)
				adminProperties.PUT("/:id", propertyHandler.UpdateProperty)
				adminProperties.DELETE("/:id", propertyHandler.DeleteProperty)
				adminProperties.POST("/:id/faqs/:faqId/move-up", faqHandler.MoveFAQUp)
				adminProperties.POST("/:id/faqs/:faqId/move-down", faqHandler.MoveFAQDown)
			}

			// FAQ management
			adminFAQs := admin.Group("/faqs")
			{
				adminFAQs.POST("", faqHandler.CreateFAQ)
				adminFAQs.PUT("/:id", faqHandler.UpdateFAQ)
				adminFAQs.DELETE("/:id", faqHandler.DeleteFAQ)
			}

			// Site visit management
			adminVisits := admin.Group("/site-visits")
			{
				adminVisits.GET("", siteVisitHandler.GetSiteVisits)
				adminVisits.PUT("/:id/status", siteVisitHandler.UpdateSiteVisitStatus)
			}

			// User management
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", adminHandler.GetUsers)
				adminUsers.PUT("/:id", adminHandler.UpdateUser)
				adminUsers.DELETE("/:id", adminHandler.DeleteUser)
			}

			// Media uploads
			adminMedia := admin.Group("/media")
			{
				adminMedia.POST("", middleware.UploadRateLimit(), adminHandler.UploadMedia)
				// Wildcard: object keys contain the folder prefix ("properties/...")
				adminMedia.DELETE("/*key", adminHandler.DeleteMedia)
			}
		}
	}

	return r
}
