package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yogastudio/yoga-backend/internal/config"
	"github.com/yogastudio/yoga-backend/internal/handler"
	"github.com/yogastudio/yoga-backend/internal/middleware"
	"github.com/yogastudio/yoga-backend/internal/response"
	"github.com/yogastudio/yoga-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Session *handler.SessionHandler
	Teacher *handler.TeacherHandler
	User    *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	authLimiter *middleware.RateLimiter,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict CORS to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Token resolution runs on every request; rejection is left to the
	// per-group RequireAuth guard.
	router.Use(middleware.Authenticate(authService))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth endpoints, rate limited per client IP.
	auth := router.Group("/api/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/register", handlers.Auth.Register)
	}

	// Everything else requires a valid bearer token.
	api := router.Group("/api")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/session", handlers.Session.List)
		api.GET("/session/:id", handlers.Session.GetByID)
		api.POST("/session", handlers.Session.Create)
		api.PUT("/session/:id", handlers.Session.Update)
		api.DELETE("/session/:id", handlers.Session.Delete)
		api.POST("/session/:id/participate/:userId", handlers.Session.Participate)
		api.DELETE("/session/:id/participate/:userId", handlers.Session.NoLongerParticipate)

		api.GET("/teacher", handlers.Teacher.List)
		api.GET("/teacher/:id", handlers.Teacher.GetByID)

		api.GET("/user/:id", handlers.User.GetByID)
		api.DELETE("/user/:id", handlers.User.Delete)
	}

	return router
}
