package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"malaysia-energy-synth/internal/api/models"
)

// Zones handles GET /api/v1/zones.
func (h *GenerationHandler) Zones(c *gin.Context) {
	c.JSON(http.StatusOK, models.ZonesResponse{Zones: h.Catalog.Zones()})
}
