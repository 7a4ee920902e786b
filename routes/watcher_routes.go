package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/controllers"
	"github.com/pin-point/server-go/middleware"
)

func SetupWatcherRoutes(protected *gin.RouterGroup, watcherController *controllers.WatcherController, limiter *middleware.RateLimiter) {
	protected.POST("/fetchwatchers", watcherController.FetchWatchers)
	protected.POST("/pushwatcher", limiter.Limit(), watcherController.PushWatcher)
	protected.POST("/deletewatcher", watcherController.DeleteWatcher)
}
