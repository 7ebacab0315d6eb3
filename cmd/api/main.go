package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hostdesk/reservation-api/internal/config"
	dbpkg "github.com/hostdesk/reservation-api/internal/db"
	"github.com/hostdesk/reservation-api/internal/logging"
	"github.com/hostdesk/reservation-api/internal/middleware"
	"github.com/hostdesk/reservation-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	repo, backend := dbpkg.SelectRepository(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
	})

	routes.RegisterRoutes(r, repo, cfg, log)

	log.Info("server running", "addr", cfg.Addr(), "backend", backend)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
