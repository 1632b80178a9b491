package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountTypeHandler handles HTTP requests related to account types.
type accountTypeHandler struct {
	accountTypeService portssvc.AccountTypeSvcFacade
}

func newAccountTypeHandler(svc portssvc.AccountTypeSvcFacade) *accountTypeHandler {
	return &accountTypeHandler{accountTypeService: svc}
}

// registerAccountTypeRoutes registers routes related to account types.
func registerAccountTypeRoutes(rg *gin.RouterGroup, svc portssvc.AccountTypeSvcFacade) {
	h := newAccountTypeHandler(svc)

	accountTypes := rg.Group("/account-types")
	{
		accountTypes.POST("", h.createAccountType)
		accountTypes.GET("", h.listAccountTypes)
		accountTypes.GET("/:id", h.getAccountType)
		accountTypes.PUT("/:id", h.updateAccountType)
	}
}

// parseSequenceID reads the :id path parameter shared by all entity routes.
func parseSequenceID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return id, true
}

// createAccountType godoc
// @Summary Create a new account type
// @Description Adds a new account type (e.g. assets, liabilities) with its normal balance origin
// @Tags account-types
// @Accept  json
// @Produce  json
// @Param   accountType body dto.CreateAccountTypeRequest true "Account type details"
// @Success 201 {object} dto.AccountTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Account type already exists"
// @Failure 500 {object} ErrorResponse "Failed to create account type"
// @Security BearerAuth
// @Router /account-types [post]
func (h *accountTypeHandler) createAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccountType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.accountTypeService.CreateAccountType(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create account type")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountTypeResponse(created))
}

// getAccountType godoc
// @Summary Get an account type by id
// @Description Retrieves one account type by its numeric id
// @Tags account-types
// @Produce  json
// @Param   id path int true "Account type ID"
// @Success 200 {object} dto.AccountTypeResponse
// @Failure 404 {object} ErrorResponse "Account type not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve account type"
// @Security BearerAuth
// @Router /account-types/{id} [get]
func (h *accountTypeHandler) getAccountType(c *gin.Context) {
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	accountType, err := h.accountTypeService.GetAccountTypeBySequenceID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve account type")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountTypeResponse(accountType))
}

// updateAccountType godoc
// @Summary Update an account type
// @Description Applies the provided fields to an existing account type
// @Tags account-types
// @Accept  json
// @Produce  json
// @Param   id path int true "Account type ID"
// @Param   accountType body dto.UpdateAccountTypeRequest true "Fields to update"
// @Success 200 {object} dto.AccountTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Account type not found"
// @Failure 500 {object} ErrorResponse "Failed to update account type"
// @Security BearerAuth
// @Router /account-types/{id} [put]
func (h *accountTypeHandler) updateAccountType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAccountType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.accountTypeService.UpdateAccountType(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update account type")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountTypeResponse(updated))
}

// listAccountTypes godoc
// @Summary List account types
// @Description Retrieves account types matching the given filters, optionally paginated
// @Tags account-types
// @Produce  json
// @Param   id query int false "Filter by numeric id"
// @Param   description query string false "Filter by description substring"
// @Param   origin query string false "Filter by origin (DEBIT or CREDIT)"
// @Param   active query bool false "Filter by active flag"
// @Param   paginated query bool false "Enable pagination"
// @Param   pageIndex query int false "1-based page index"
// @Param   pageSize query int false "Page size (default 15)"
// @Success 200 {object} dto.ListAccountTypesResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Failed to list account types"
// @Security BearerAuth
// @Router /account-types [get]
func (h *accountTypeHandler) listAccountTypes(c *gin.Context) {
	var filter dto.AccountTypeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	types, total, err := h.accountTypeService.ListAccountTypes(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list account types")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountTypesResponse{
		Items: dto.ToAccountTypeResponses(types),
		Total: total,
	})
}
