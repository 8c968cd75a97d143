package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Martial4034/gigi-sales-leaderboard/handlers"
	"github.com/Martial4034/gigi-sales-leaderboard/middleware"
)

// RegisterLeaderboardRoutes registers the public leaderboard endpoints.
func RegisterLeaderboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/leaderboard", hb.GetLeaderboardHandler)
		api.GET("/leaderboard/export", hb.ExportLeaderboardHandler)
		api.GET("/challenges", hb.GetChallengesHandler)
	}
}

// RegisterVendorRoutes registers the vendor profile and mutation endpoints.
// Mutations require a verified identity from the identity provider.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendeur")
	{
		api.GET("/:id", hb.GetVendorHandler)

		protected := api.Group("")
		protected.Use(middleware.FirebaseAuthMiddleware())
		protected.POST("/:id/update-sale", hb.UpdateSaleHandler)
		protected.DELETE("/:id/delete-sale", hb.DeleteSaleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gigi"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterLeaderboardRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterHealthRoute(r)
}
