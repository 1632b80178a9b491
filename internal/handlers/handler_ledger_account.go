package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerAccountHandler handles HTTP requests related to the chart of accounts.
type ledgerAccountHandler struct {
	ledgerAccountService portssvc.LedgerAccountSvcFacade
}

func newLedgerAccountHandler(svc portssvc.LedgerAccountSvcFacade) *ledgerAccountHandler {
	return &ledgerAccountHandler{ledgerAccountService: svc}
}

// registerLedgerAccountRoutes registers routes related to ledger accounts.
func registerLedgerAccountRoutes(rg *gin.RouterGroup, svc portssvc.LedgerAccountSvcFacade) {
	h := newLedgerAccountHandler(svc)

	accounts := rg.Group("/ledger-accounts")
	{
		accounts.POST("", h.createLedgerAccount)
		accounts.GET("", h.listLedgerAccounts)
		accounts.GET("/:id", h.getLedgerAccount)
		accounts.PUT("/:id", h.updateLedgerAccount)
	}
}

// createLedgerAccount godoc
// @Summary Create a new ledger account
// @Description Adds an account to the chart of accounts; parents must sit at a smaller level
// @Tags ledger-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateLedgerAccountRequest true "Ledger account details"
// @Success 201 {object} dto.LedgerAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Ledger account already exists"
// @Failure 500 {object} ErrorResponse "Failed to create ledger account"
// @Security BearerAuth
// @Router /ledger-accounts [post]
func (h *ledgerAccountHandler) createLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLedgerAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.ledgerAccountService.CreateLedgerAccount(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create ledger account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerAccountResponse(created))
}

// getLedgerAccount godoc
// @Summary Get a ledger account by id
// @Description Retrieves one ledger account by its numeric id
// @Tags ledger-accounts
// @Produce  json
// @Param   id path int true "Ledger account ID"
// @Success 200 {object} dto.LedgerAccountResponse
// @Failure 404 {object} ErrorResponse "Ledger account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve ledger account"
// @Security BearerAuth
// @Router /ledger-accounts/{id} [get]
func (h *ledgerAccountHandler) getLedgerAccount(c *gin.Context) {
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	account, err := h.ledgerAccountService.GetLedgerAccountBySequenceID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve ledger account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(account))
}

// updateLedgerAccount godoc
// @Summary Update a ledger account
// @Description Applies the provided fields to an existing ledger account
// @Tags ledger-accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Ledger account ID"
// @Param   account body dto.UpdateLedgerAccountRequest true "Fields to update"
// @Success 200 {object} dto.LedgerAccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Ledger account not found"
// @Failure 500 {object} ErrorResponse "Failed to update ledger account"
// @Security BearerAuth
// @Router /ledger-accounts/{id} [put]
func (h *ledgerAccountHandler) updateLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	var req dto.UpdateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateLedgerAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.ledgerAccountService.UpdateLedgerAccount(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update ledger account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(updated))
}

// listLedgerAccounts godoc
// @Summary List ledger accounts
// @Description Retrieves ledger accounts matching the given filters, optionally paginated
// @Tags ledger-accounts
// @Produce  json
// @Param   id query int false "Filter by numeric id"
// @Param   description query string false "Filter by description substring"
// @Param   level query int false "Filter by level (1-3)"
// @Param   parentAccountID query int false "Filter by parent account id"
// @Param   active query bool false "Filter by active flag"
// @Param   paginated query bool false "Enable pagination"
// @Param   pageIndex query int false "1-based page index"
// @Param   pageSize query int false "Page size (default 15)"
// @Success 200 {object} dto.ListLedgerAccountsResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Failed to list ledger accounts"
// @Security BearerAuth
// @Router /ledger-accounts [get]
func (h *ledgerAccountHandler) listLedgerAccounts(c *gin.Context) {
	var filter dto.LedgerAccountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	accounts, total, err := h.ledgerAccountService.ListLedgerAccounts(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list ledger accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListLedgerAccountsResponse{
		Items: dto.ToLedgerAccountResponses(accounts),
		Total: total,
	})
}
