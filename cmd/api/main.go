package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"price-optimization-api/config"
	"price-optimization-api/handlers"
	"price-optimization-api/middleware"
	"price-optimization-api/models"
	"price-optimization-api/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres is optional; without it the history endpoint is simply
	// not registered and records are dropped.
	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
		if err != nil {
			log.Printf("history disabled: database connection failed: %v", err)
			db = nil
		} else if err := db.AutoMigrate(&models.PredictionRecord{}); err != nil {
			log.Printf("history disabled: migration failed: %v", err)
			db = nil
		}
	}

	// Redis is optional; the cache degrades to a no-op when unreachable.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("cache disabled: %v", err)
	}
	defer cache.Close()

	store := services.NewModelStore(cfg.Model)
	predictor := services.NewPredictorService(store, cfg.Model)
	history := services.NewHistoryService(db)

	authService, err := services.NewAuthService(cfg.JWT, cfg.Admin)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	router.GET("/healthz", handlers.NewHealthHandler(store).Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/predict", handlers.NewPredictHandler(predictor, cache, history).Predict)
	router.POST("/optimize", handlers.NewOptimizeHandler(predictor, cache, history).Optimize)

	if db != nil {
		router.GET("/predictions", handlers.NewPredictionsHandler(db, cache).GetHistory)
	}

	router.POST("/auth/login", handlers.NewAuthHandler(authService).Login)

	adminHandler := handlers.NewAdminHandler(store)
	adminRoutes := router.Group("/admin", middleware.RequireAuth(authService))
	adminRoutes.GET("/model", adminHandler.GetModel)
	adminRoutes.POST("/reload", adminHandler.Reload)

	router.GET("/ws/predictions", handlers.LiveWebSocket(cache, authService))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting price optimization API on %s (COGS=%.2f, model=%s)",
		addr, cfg.Model.COGS, cfg.Model.ModelPath)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
