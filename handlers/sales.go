package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	salesRepo "github.com/Martial4034/gigi-sales-leaderboard/database/repository/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/models"
	"github.com/Martial4034/gigi-sales-leaderboard/services/permission"
	"github.com/Martial4034/gigi-sales-leaderboard/services/sales"
	"github.com/Martial4034/gigi-sales-leaderboard/utils"
)

// SalesHandler exposes the sale mutation endpoints.
type SalesHandler struct {
	Service sales.Service
}

// NewSalesHandler returns a SalesHandler wired to the given service.
func NewSalesHandler(svc sales.Service) *SalesHandler {
	return &SalesHandler{Service: svc}
}

// UpdateSaleHandler handles POST /api/vendeur/:id/update-sale.
func (h *SalesHandler) UpdateSaleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	vendorID := c.Param("id")
	callerEmail := c.GetString("userEmail")

	var req models.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid update-sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if err := h.Service.UpdateSale(c.Request.Context(), callerEmail, vendorID, req); err != nil {
		writeSaleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vente mise à jour avec succès",
	})
}

// DeleteSaleHandler handles DELETE /api/vendeur/:id/delete-sale.
func (h *SalesHandler) DeleteSaleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	vendorID := c.Param("id")
	callerEmail := c.GetString("userEmail")

	var req models.DeleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid delete-sale payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	if err := h.Service.DeleteSale(c.Request.Context(), callerEmail, vendorID, req); err != nil {
		writeSaleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vente supprimée avec succès",
	})
}

// writeSaleError maps the failure taxonomy onto HTTP statuses. Everything is
// translated here; nothing propagates as an unhandled fault.
func writeSaleError(c *gin.Context, err error) {
	var vErr sales.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, permission.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
	case errors.Is(err, permission.ErrCallerUnrecognized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Utilisateur non autorisé"})
	case errors.Is(err, permission.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès non autorisé"})
	case errors.Is(err, permission.ErrMappingUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "Informations vendeur non trouvées"})
	case errors.Is(err, permission.ErrTargetVendorUnknown):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendeur non trouvé"})
	case errors.Is(err, salesRepo.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vente non trouvée"})
	default:
		utils.GetLogger().Error("sale mutation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur serveur"})
	}
}
