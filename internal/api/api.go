// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gdghack/stockwise/internal/api/handlers"
	"github.com/gdghack/stockwise/internal/api/middleware"
	"github.com/gdghack/stockwise/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Inventory      *service.InventoryService
	Recommendation *service.RecommendationService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Inventory != nil {
			itemHandler := handlers.NewItemHandler(services.Inventory)
			itemGroup := apiGroup.Group("/items")
			{
				itemGroup.GET("", itemHandler.List)
				itemGroup.POST("", itemHandler.Create)
				itemGroup.PUT("/:id", itemHandler.Update)
				itemGroup.DELETE("/:id", itemHandler.Delete)
			}

			demandHandler := handlers.NewDemandHandler(services.Inventory)
			demandGroup := apiGroup.Group("/demand")
			{
				demandGroup.GET("/:itemId", demandHandler.History)
				demandGroup.POST("", demandHandler.Add)
				demandGroup.PUT("", demandHandler.Edit)
			}
		}

		if services.Recommendation != nil {
			recommendHandler := handlers.NewRecommendHandler(services.Recommendation)
			recommendGroup := apiGroup.Group("/recommend")
			{
				recommendGroup.POST("/stock", recommendHandler.Stock)
				recommendGroup.POST("/cash", recommendHandler.Cash)
				recommendGroup.POST("/optimize-budget", recommendHandler.OptimizeBudget)
				recommendGroup.GET("/plans", recommendHandler.Plans)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
