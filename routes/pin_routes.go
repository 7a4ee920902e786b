package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/controllers"
	"github.com/pin-point/server-go/middleware"
)

func SetupPinRoutes(protected *gin.RouterGroup, pinController *controllers.PinController, limiter *middleware.RateLimiter) {
	protected.GET("/fetchpins", pinController.FetchPins)
	protected.POST("/pushpin", limiter.Limit(), pinController.PushPin)
	protected.POST("/deletepin", pinController.DeletePin)
}
