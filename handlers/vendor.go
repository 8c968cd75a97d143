package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	mappingRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/mapping"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/services/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// VendorHandler exposes the vendor profile endpoints.
type VendorHandler struct {
	Mapping      mappingRepo.MappingRepository
	Sales        sales.Service
	SlackTeamURL string
}

// NewVendorHandler returns a VendorHandler wired to its collaborators.
func NewVendorHandler(mapping mappingRepo.MappingRepository, svc sales.Service, slackTeamURL string) *VendorHandler {
	return &VendorHandler{Mapping: mapping, Sales: svc, SlackTeamURL: slackTeamURL}
}

// GetVendorHandler handles GET /api/vendeur/:id. The optional ?challenge=
// query narrows the sales to one challenge collection; default is all of them.
func (h *VendorHandler) GetVendorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	vendorID := c.Param("id")
	challenge := c.Query("challenge")
	ctx := c.Request.Context()

	mapping, err := h.Mapping.Fetch(ctx)
	if err != nil {
		if errors.Is(err, mappingRepo.ErrMappingEmpty) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Informations vendeur non trouvées"})
			return
		}
		logger.Error("vendor mapping fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	info, ok := mapping[vendorID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendeur non trouvé"})
		return
	}

	records, totals, err := h.Sales.VendorSales(ctx, vendorID, challenge)
	if err != nil {
		logger.Error("vendor sales fetch failed", zap.String("vendor", vendorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	available, err := h.Sales.AvailableChallenges(ctx)
	if err != nil {
		logger.Error("challenge discovery failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}

	profile := models.VendorProfile{
		ID:         vendorID,
		Name:       info.Name,
		AvatarURL:  info.AvatarURL,
		Challenges: available,
		Sales:      records,
		Totals:     totals,
	}
	if h.SlackTeamURL != "" {
		profile.SlackURL = h.SlackTeamURL + vendorID
	}
	c.JSON(http.StatusOK, profile)
}

// GetChallengesHandler handles GET /api/challenges.
func (h *VendorHandler) GetChallengesHandler(c *gin.Context) {
	available, err := h.Sales.AvailableChallenges(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("challenge discovery failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": available})
}
