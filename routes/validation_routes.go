package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/controllers"
	"github.com/pin-point/server-go/middleware"
)

func SetupValidationRoutes(protected *gin.RouterGroup, validationController *controllers.ValidationController, limiter *middleware.RateLimiter) {
	validates := protected.Group("/validates")
	{
		validates.POST("/add", limiter.Limit(), validationController.AddValidation)
		validates.POST("/delete", validationController.DeleteValidation)
		validates.POST("/getscore", validationController.GetScore)
		validates.POST("/getvalidated", validationController.GetValidated)
	}
}
