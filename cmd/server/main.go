// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdghack/stockwise/internal/advisor"
	"github.com/gdghack/stockwise/internal/api"
	"github.com/gdghack/stockwise/internal/cache"
	"github.com/gdghack/stockwise/internal/config"
	"github.com/gdghack/stockwise/internal/engine"
	"github.com/gdghack/stockwise/internal/repository"
	"github.com/gdghack/stockwise/internal/repository/memory"
	"github.com/gdghack/stockwise/internal/repository/postgres"
	"github.com/gdghack/stockwise/internal/service"
	"github.com/gdghack/stockwise/internal/storage"
	"github.com/gdghack/stockwise/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		items  repository.ItemRepository
		demand repository.DemandRepository
	)
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		items = postgres.NewItemRepository(db)
		demand = postgres.NewDemandRepository(db, cfg.Engine.HistoryCap)
		logger.Log.Info().Str("host", cfg.Database.Host).Msg("Using postgres repositories")
	} else {
		items = memory.NewItemRepository()
		demand = memory.NewDemandRepository(cfg.Engine.HistoryCap)
		logger.Log.Info().Msg("Using in-memory repositories")
	}

	recCache, err := cache.NewRecommendationCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Redis unavailable, recommendation caching disabled")
		recCache = cache.NewNoopRecommendationCache()
	}

	var adv advisor.Advisor
	if cfg.Advisor.APIKey != "" {
		geminiAdvisor, err := advisor.NewGeminiAdvisor(context.Background(), cfg.Advisor)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Gemini unavailable, using static explanations")
		} else {
			defer geminiAdvisor.Close()
			adv = geminiAdvisor
			logger.Log.Info().Str("model", cfg.Advisor.Model).Msg("Gemini advisor enabled")
		}
	}

	var archive storage.PlanArchive
	if cfg.Archive.Enabled {
		s3Archive, err := storage.NewS3Archive(cfg.Archive)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Plan archive unavailable")
		} else {
			archive = s3Archive
			logger.Log.Info().Str("bucket", cfg.Archive.Bucket).Msg("Plan archive enabled")
		}
	}

	eng := engine.New(cfg.Engine)
	inventoryService := service.NewInventoryService(items, demand, recCache)
	recommendationService := service.NewRecommendationService(items, demand, eng, adv, recCache, archive)

	router := api.NewRouter(&api.Services{
		Inventory:      inventoryService,
		Recommendation: recommendationService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
