package handler

import (
	"net/http"

	"github.com/fastex-delivery/service-booking/internal/masterdata"
	"github.com/gin-gonic/gin"
)

// MasterDataHandler serves the static reference-data catalog.
type MasterDataHandler struct{}

// NewMasterDataHandler creates a new MasterDataHandler.
func NewMasterDataHandler() *MasterDataHandler {
	return &MasterDataHandler{}
}

// RegisterRoutes registers the master data route.
func (h *MasterDataHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/v1/master", h.GetMasterData)
}

// GetMasterData handles GET /api/v1/master.
func (h *MasterDataHandler) GetMasterData(c *gin.Context) {
	c.JSON(http.StatusOK, masterdata.Fetch())
}
