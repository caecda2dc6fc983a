package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tuitionhub/tuition-backend/internal/config"
	"github.com/tuitionhub/tuition-backend/internal/handler"
	"github.com/tuitionhub/tuition-backend/internal/middleware"
	"github.com/tuitionhub/tuition-backend/internal/response"
	"github.com/tuitionhub/tuition-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth  *handler.AuthHandler
	Class *handler.ClassHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
//
// The access policy, first match wins:
//  1. OPTIONS anywhere: answered by the CORS middleware, never authenticated.
//  2. POST /api/auth/register: public.
//  3. GET /api/classes: public.
//  4. Everything else: valid Basic credentials required; any role qualifies.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// CORS: the tuition frontend origin only, credentials allowed so the
	// browser attaches the Basic Authorization header.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Registration is the only auth endpoint; login does not exist because
	// Basic credentials ride on every request.
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
	}

	classes := router.Group("/api/classes")
	{
		// The listing is public; everything else on the registry requires
		// authentication.
		classes.GET("", handlers.Class.List)

		protected := classes.Group("")
		protected.Use(middleware.RequireBasicAuth(authService))
		{
			protected.POST("", handlers.Class.Create)
			protected.GET("/:id", handlers.Class.Get)
			protected.PUT("/:id", handlers.Class.Update)
			protected.DELETE("/:id", handlers.Class.Delete)
		}
	}

	return router
}
