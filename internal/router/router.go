// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/imi-catalog/internal/config"
	"github.com/javajoker/imi-catalog/internal/handlers"
	"github.com/javajoker/imi-catalog/internal/i18n"
	"github.com/javajoker/imi-catalog/internal/middleware"
	"github.com/javajoker/imi-catalog/internal/services"
	"github.com/javajoker/imi-catalog/internal/store"
	"github.com/javajoker/imi-catalog/internal/utils"
)

// Initialize wires services, handlers and middleware around s. The returned
// func releases the rate limiter's background cleanup.
func Initialize(s *store.Store, cfg *config.Config) (*gin.Engine, func()) {
	// Initialize services
	catalogService := services.NewCatalogService(s)
	observerService := services.NewObserverService(s)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	inventoryHandler := handlers.NewInventoryHandler(catalogService)
	observerHandler := handlers.NewObserverHandler(observerService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.Catalog.DefaultLocale))
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "healthy",
			"version":        "1.0.0",
			"inventory_size": s.Len(),
			"observers":      s.Observers(),
			"languages":      i18n.GetSupportedLanguages(),
		})
	})

	admin := []gin.HandlerFunc{middleware.AuthRequired(), middleware.AdminRequired()}

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/details", productHandler.GetProductDetails)

			protected := products.Group("")
			protected.Use(admin...)
			{
				protected.POST("", productHandler.BuildProduct)
				protected.POST("/quick", productHandler.QuickAddProduct)
			}
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ShowInventory)
			inventory.POST("/updates", append(admin, inventoryHandler.UpdateInventory)...)
		}

		observers := v1.Group("/observers")
		{
			observers.GET("/:name/messages", observerHandler.GetMessages)

			protected := observers.Group("")
			protected.Use(admin...)
			{
				protected.POST("", observerHandler.Subscribe)
				protected.DELETE("/:name", observerHandler.Unsubscribe)
			}
		}
	}

	return r, limiter.Stop
}
