package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		v1.POST("/enrichments", handler.TriggerEnrichment)
		v1.POST("/enrichments/pending", handler.TriggerPendingEnrichment)

		v1.GET("/products/:id/enrichment-logs", handler.GetEnrichmentLogs)
		v1.GET("/products/:id/enrichment-sources", handler.GetEnrichmentSources)

		v1.POST("/normalize/brand", handler.NormalizeBrand)
		v1.POST("/normalize/category", handler.NormalizeCategory)

		v1.GET("/settings", handler.GetSettings)
		// Settings hold vendor credentials; writes require an API key
		v1.PUT("/settings", middleware.RequireAuthType(middleware.AUTH_TYPE_APIKEY), handler.UpdateSettings)
	}
}
