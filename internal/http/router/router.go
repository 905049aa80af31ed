package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/moderation-backend/internal/config"
	"github.com/ignatzorin/moderation-backend/internal/http/handlers"
	"github.com/ignatzorin/moderation-backend/internal/http/middleware"
	"github.com/ignatzorin/moderation-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	flaggedHandler *handlers.FlaggedHandler,
	triggerHandler *handlers.TriggerHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Авторизация ревьюеров консоли.
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod))
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// Intake: личность репортера подтверждает внешний identity провайдер.
	intake := api.Group("/flagged")
	intake.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	intake.Use(middleware.IdentityMiddleware(cfg.IdentityStrict))
	{
		intake.POST("", flaggedHandler.Intake)
	}

	// Консоль модерации: только для авторизованных ревьюеров.
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.GET("/flagged", flaggedHandler.List)
		protected.GET("/flagged/:id", middleware.UUIDValidator("id"), flaggedHandler.Get)
		protected.PUT("/flagged/:id/decision", middleware.UUIDValidator("id"), flaggedHandler.Decide)

		protected.GET("/triggers", triggerHandler.List)
		protected.POST("/triggers", triggerHandler.Create)
		protected.DELETE("/triggers/:id", middleware.UUIDValidator("id"), triggerHandler.Delete)
	}

	return r
}
