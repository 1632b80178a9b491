package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(svc portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: svc}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, svc portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(svc)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.POST("/:id/refresh-rate", h.refreshExchangeRate)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency with its ISO code and optional starting exchange rate
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Currency already exists"
// @Failure 500 {object} ErrorResponse "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create currency")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// getCurrency godoc
// @Summary Get a currency by id
// @Description Retrieves one currency by its numeric id
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyBySequenceID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Applies the provided fields to an existing currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to update currency"
// @Security BearerAuth
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// refreshExchangeRate godoc
// @Summary Refresh a currency's exchange rate
// @Description Fetches the live rate from the external provider and stores it as the last known rate
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse "Failed to refresh exchange rate"
// @Security BearerAuth
// @Router /currencies/{id}/refresh-rate [post]
func (h *currencyHandler) refreshExchangeRate(c *gin.Context) {
	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.RefreshExchangeRate(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "Failed to refresh exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves currencies matching the given filters, optionally paginated
// @Tags currencies
// @Produce  json
// @Param   id query int false "Filter by numeric id"
// @Param   isoCode query string false "Filter by ISO code"
// @Param   description query string false "Filter by description substring"
// @Param   active query bool false "Filter by active flag"
// @Param   paginated query bool false "Enable pagination"
// @Param   pageIndex query int false "1-based page index"
// @Param   pageSize query int false "Page size (default 15)"
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	var filter dto.CurrencyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	currencies, total, err := h.currencyService.ListCurrencies(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err, "Failed to list currencies")
		return
	}

	c.JSON(http.StatusOK, dto.ListCurrenciesResponse{
		Items: dto.ToCurrencyResponses(currencies),
		Total: total,
	})
}
