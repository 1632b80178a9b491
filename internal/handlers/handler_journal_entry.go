package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests related to journal entries.
// Every operation resolves the caller from the validated token so the
// service can enforce tenant scoping.
type journalEntryHandler struct {
	journalEntryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(svc portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalEntryService: svc}
}

// registerJournalEntryRoutes registers routes related to journal entries.
func registerJournalEntryRoutes(rg *gin.RouterGroup, svc portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(svc)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.PUT("/:id", h.updateJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a new journal entry
// @Description Posts a balanced double-entry transaction with at least one debit and one credit line
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid or unbalanced entry"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalEntryHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.journalEntryService.CreateJournalEntry(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(created))
}

// getJournalEntry godoc
// @Summary Get a journal entry by id
// @Description Retrieves one journal entry with its lines; tenant-bound callers only see their own entries
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 403 {object} ErrorResponse "Entry belongs to another auxiliary system"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	entry, err := h.journalEntryService.GetJournalEntryBySequenceID(c.Request.Context(), caller, id)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// updateJournalEntry godoc
// @Summary Update a journal entry
// @Description Replaces the header fields and the full line list of an existing entry
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Replacement entry"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid or unbalanced entry"
// @Failure 403 {object} ErrorResponse "Entry belongs to another auxiliary system"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to update journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [put]
func (h *journalEntryHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, ok := parseSequenceID(c)
	if !ok {
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.journalEntryService.UpdateJournalEntry(c.Request.Context(), caller, id, req)
	if err != nil {
		respondWithError(c, err, "Failed to update journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(updated))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Retrieves journal entries matching the given filters; tenant-bound callers only see their own entries
// @Tags journal-entries
// @Produce  json
// @Param   id query int false "Filter by numeric id"
// @Param   description query string false "Filter by description substring"
// @Param   auxiliarySystemID query int false "Filter by auxiliary system id (global callers only)"
// @Param   accountID query int false "Filter by ledger account id appearing in the lines"
// @Param   movementType query string false "Filter by line movement type (DEBIT or CREDIT)"
// @Param   dateFrom query string false "Filter by entry date lower bound (YYYY-MM-DD)"
// @Param   dateTo query string false "Filter by entry date upper bound (YYYY-MM-DD)"
// @Param   paginated query bool false "Enable pagination"
// @Param   pageIndex query int false "1-based page index"
// @Param   pageSize query int false "Page size (default 15)"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Failure 500 {object} ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		logger.Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var filter dto.JournalEntryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, total, err := h.journalEntryService.ListJournalEntries(c.Request.Context(), caller, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{
		Items: dto.ToJournalEntryResponses(entries),
		Total: total,
	})
}
