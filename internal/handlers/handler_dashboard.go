package handlers

import (
	"net/http"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard related requests.
type DashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc portssvc.DashboardSvcFacade) *DashboardHandler {
	return &DashboardHandler{dashboardService: svc}
}

func registerDashboardRoutes(rg *gin.RouterGroup, svc portssvc.DashboardSvcFacade) {
	h := NewDashboardHandler(svc)
	rg.GET("/dashboard", h.GetSystemSummary)
}

// GetSystemSummary godoc
// @Summary Get system summary
// @Description Retrieves aggregate record counts across the system.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.SystemSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) GetSystemSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSystemSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to retrieve system summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSystemSummaryResponse(summary))
}
