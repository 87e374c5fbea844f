package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/perebo-sp/nft-marketplace/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints (public access)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens/:id/listing", handler.GetListing)
		v1.GET("/tokens/:id/shares", handler.GetShares)
		v1.GET("/tokens/:id/rewards", handler.GetRewards)
		v1.GET("/bank/accounts/:address/balance", handler.GetBalance)
		v1.GET("/params", handler.GetParams)
		v1.GET("/stats", handler.GetStats)
		v1.GET("/changes", handler.GetChanges)

		// Ledger operations (require authentication)
		auth := v1.Group("", middleware.Auth(authCfg))
		{
			auth.POST("/tokens", handler.Mint)
			auth.POST("/tokens/:id/transfer", handler.Transfer)
			auth.POST("/tokens/:id/list", handler.List)
			auth.POST("/tokens/:id/purchase", handler.Purchase)
			auth.POST("/tokens/:id/shares/issue", handler.IssueShares)
			auth.POST("/tokens/:id/shares/transfer", handler.TransferShares)
			auth.POST("/tokens/:id/stake", handler.Stake)
			auth.POST("/tokens/:id/unstake", handler.Unstake)
			auth.POST("/bank/deposit", handler.Deposit)
		}

		// Operator surface (requires API key authentication only)
		v1.PUT("/params", middleware.APIKeyAuth(authCfg), handler.UpdateParams)
	}
}
