package main

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-point/server-go/config"
	"github.com/pin-point/server-go/logger"
	"github.com/pin-point/server-go/middleware"
	"github.com/pin-point/server-go/routes"
)

func main() {
	log := logger.New("pinpoint-server")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	routes.SetupRoutes(r, db, cfg, log)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
