package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arogyahub/docbook/internal/cache"
	"github.com/arogyahub/docbook/internal/config"
	dbpkg "github.com/arogyahub/docbook/internal/db"
	"github.com/arogyahub/docbook/internal/logger"
	"github.com/arogyahub/docbook/internal/middleware"
	"github.com/arogyahub/docbook/internal/monitoring"
	"github.com/arogyahub/docbook/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	if cfg.SeedData {
		dbpkg.Seed(db, log)
	}

	cacheClient, err := cache.New(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer cacheClient.Close()

	monitoring.Init()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.PrometheusMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cacheClient, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
