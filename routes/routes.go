package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/controllers"
	"github.com/pin-point/server-go/middleware"
	"github.com/pin-point/server-go/notify"
	"github.com/pin-point/server-go/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	// Initialize services
	watcherService := services.NewWatcherService(db, cfg)
	dispatcher := &notify.LogDispatcher{Log: log}
	pinService := services.NewPinService(db, cfg, log, watcherService, dispatcher)
	endorsementService := services.NewEndorsementService(db, log)

	// Initialize controllers
	authController := controllers.NewAuthController(db, cfg)
	pinController := controllers.NewPinController(pinService)
	watcherController := controllers.NewWatcherController(watcherService)
	validationController := controllers.NewValidationController(endorsementService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/signup", authController.Signup)
		public.POST("/login", authController.Login)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/pushtoken", authController.RegisterPushToken)

		SetupPinRoutes(protected, pinController, limiter)
		SetupWatcherRoutes(protected, watcherController, limiter)
		SetupValidationRoutes(protected, validationController, limiter)
	}
}
