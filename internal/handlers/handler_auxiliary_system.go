package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auxiliarySystemHandler handles HTTP requests related to auxiliary systems.
type auxiliarySystemHandler struct {
	auxiliarySystemService portssvc.AuxiliarySystemSvcFacade
}

func newAuxiliarySystemHandler(svc portssvc.AuxiliarySystemSvcFacade) *auxiliarySystemHandler {
	return &auxiliarySystemHandler{auxiliarySystemService: svc}
}

// registerAuxiliarySystemRoutes registers routes related to auxiliary systems.
func registerAuxiliarySystemRoutes(rg *gin.RouterGroup, svc portssvc.AuxiliarySystemSvcFacade) {
	h := newAuxiliarySystemHandler(svc)

	systems := rg.Group("/auxiliary-systems")
	{
		systems.POST("", h.createAuxiliarySystem)
		systems.GET("", h.listAuxiliarySystems)
		systems.GET("/:id", h.getAuxiliarySystem)
		systems.PUT("/:id", h.updateAuxiliarySystem)
	}
}

// createAuxiliarySystem godoc
// @Summary Register a new auxiliary system
// @Description Adds a new consuming system (tenant) to the registry
// @Tags auxiliary-systems
// @Accept  json
// @Produce  json
// @Param   system body dto.CreateAuxiliarySystemRequest true "Auxiliary system details"
// @Success 201 {object} dto.AuxiliarySystemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Auxiliary system already exists"
// @Failure 500 {object} ErrorResponse "Failed to create auxiliary system"
// @Security BearerAuth
// @Router /auxiliary-systems [post]
func (h *auxiliarySystemHandler) createAuxiliarySystem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAuxiliarySystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAuxiliarySystem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.auxiliarySystemService.CreateAuxiliarySystem(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create auxiliary system")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuxiliarySystemResponse(created))
}

// getAuxiliarySystem godoc
// @Summary Get an auxiliary system by id
// @Description Retrieves one auxiliary system by its numeric id
// @Tags auxiliary-systems
// @Produce  json
// @Param   id path int true "Auxiliary system ID"
// @Success 200 {object} dto.AuxiliarySystemResponse
// @Failure 404 {object} ErrorResponse "Auxiliary system not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve auxiliary system"
// @Security BearerAuth
// @Router /auxiliary-systems/{id} [get]
func (h *auxiliarySystemHandler) getAuxiliarySystem(c *gin.Context) {
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	system, err := h.auxiliarySystemService.GetAuxiliarySystemBySequenceID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve auxiliary system")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuxiliarySystemResponse(system))
}

// updateAuxiliarySystem godoc
// @Summary Update an auxiliary system
// @Description Applies the provided fields to an existing auxiliary system
// @Tags auxiliary-systems
// @Accept  json
// @Produce  json
// @Param   id path int true "Auxiliary system ID"
// @Param   system body dto.UpdateAuxiliarySystemRequest true "Fields to update"
// @Success 200 {object} dto.AuxiliarySystemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Auxiliary system not found"
// @Failure 500 {object} ErrorResponse "Failed to update auxiliary system"
// @Security BearerAuth
// @Router /auxiliary-systems/{id} [put]
func (h *auxiliarySystemHandler) updateAuxiliarySystem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	var req dto.UpdateAuxiliarySystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAuxiliarySystem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.auxiliarySystemService.UpdateAuxiliarySystem(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update auxiliary system")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuxiliarySystemResponse(updated))
}

// listAuxiliarySystems godoc
// @Summary List auxiliary systems
// @Description Retrieves auxiliary systems matching the given filters, optionally paginated
// @Tags auxiliary-systems
// @Produce  json
// @Param   id query int false "Filter by numeric id"
// @Param   description query string false "Filter by description substring"
// @Param   active query bool false "Filter by active flag"
// @Param   paginated query bool false "Enable pagination"
// @Param   pageIndex query int false "1-based page index"
// @Param   pageSize query int false "Page size (default 15)"
// @Success 200 {object} dto.ListAuxiliarySystemsResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Failed to list auxiliary systems"
// @Security BearerAuth
// @Router /auxiliary-systems [get]
func (h *auxiliarySystemHandler) listAuxiliarySystems(c *gin.Context) {
	var filter dto.AuxiliarySystemFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	systems, total, err := h.auxiliarySystemService.ListAuxiliarySystems(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list auxiliary systems")
		return
	}

	c.JSON(http.StatusOK, dto.ListAuxiliarySystemsResponse{
		Items: dto.ToAuxiliarySystemResponses(systems),
		Total: total,
	})
}
