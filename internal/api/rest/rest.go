package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/soundvine/collectibles-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Wallet collectibles (public read access)
		v1.GET("/wallets/:address/collectibles", handler.GetWalletCollectibles)

		// Frame blobs (public read access, referenced by frame_url fields)
		v1.GET("/frames/:id", handler.GetFrame)

		// Single-record normalization (requires authentication)
		v1.POST("/collectibles/normalize", middleware.Auth(authCfg), handler.NormalizeCollectible)
	}
}
