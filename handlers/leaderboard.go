package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Martial4034/gigi-sales-leaderboard/services/leaderboard"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// LeaderboardHandler exposes the ranked leaderboard endpoints.
type LeaderboardHandler struct {
	Service leaderboard.Service
}

// NewLeaderboardHandler returns a LeaderboardHandler wired to the given service.
func NewLeaderboardHandler(svc leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{Service: svc}
}

// GetLeaderboardHandler handles GET /api/leaderboard.
func (h *LeaderboardHandler) GetLeaderboardHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Snapshot())
}

// ExportLeaderboardHandler handles GET /api/leaderboard/export and streams
// the current ranking as CSV.
func (h *LeaderboardHandler) ExportLeaderboardHandler(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="leaderboard.csv"`)
	if err := h.Service.ExportCSV(c.Writer); err != nil {
		utils.GetLogger().Error("leaderboard export failed", zap.Error(err))
	}
}
