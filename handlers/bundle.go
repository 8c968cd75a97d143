package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Leaderboard endpoints.
	GetLeaderboardHandler    gin.HandlerFunc
	ExportLeaderboardHandler gin.HandlerFunc

	// Vendor endpoints.
	GetVendorHandler     gin.HandlerFunc
	GetChallengesHandler gin.HandlerFunc

	// Sale mutation endpoints.
	UpdateSaleHandler gin.HandlerFunc
	DeleteSaleHandler gin.HandlerFunc
}
