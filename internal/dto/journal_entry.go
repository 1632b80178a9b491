package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryLineRequest is one proposed posting line. AccountID is
// the ledger account's sequence id.
type CreateJournalEntryLineRequest struct {
	AccountID    int64           `json:"accountID" binding:"required"`
	MovementType string          `json:"movementType" binding:"required,oneof=DEBIT CREDIT"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// CreateJournalEntryRequest defines a proposed journal entry. For callers
// bound to an auxiliary system the AuxiliarySystemID field is ignored and
// overwritten from the token's tenant claim.
type CreateJournalEntryRequest struct {
	Description       string                          `json:"description" binding:"required"`
	AuxiliarySystemID int64                           `json:"auxiliarySystemID"`
	EntryDate         time.Time                       `json:"entryDate" binding:"required"`
	Lines             []CreateJournalEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest replaces the header fields and the full line
// list of an existing entry. Status, when present, must be one of the two
// known values; no cancellation workflow is attached to it.
type UpdateJournalEntryRequest struct {
	Description       string                          `json:"description" binding:"required"`
	AuxiliarySystemID int64                           `json:"auxiliarySystemID"`
	EntryDate         time.Time                       `json:"entryDate" binding:"required"`
	Status            *string                         `json:"status,omitempty" binding:"omitempty,oneof=REGISTERED CANCELED"`
	Lines             []CreateJournalEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalEntryFilter is the typed query filter for listing journal entries.
// AuxiliarySystemID filters by tenant sequence id; non-global callers have
// it forced to their own tenant regardless of what they send.
type JournalEntryFilter struct {
	SequenceID        int64      `form:"id"`
	Description       string     `form:"description"`
	AuxiliarySystemID int64      `form:"auxiliarySystemID"`
	AccountID         int64      `form:"accountID"`
	MovementType      string     `form:"movementType"`
	DateFrom          *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo            *time.Time `form:"dateTo" time_format:"2006-01-02"`
	PageParams

	// Resolved internal identifiers, filled by the service after looking up
	// the sequence ids above. Never bound from the request.
	AuxiliarySystemUUID string `form:"-" json:"-"`
	LedgerAccountUUID   string `form:"-" json:"-"`
}

// JournalEntryLineResponse defines the data returned for one posting line.
type JournalEntryLineResponse struct {
	LineID          string          `json:"lineID"`
	LedgerAccountID string          `json:"ledgerAccountID"`
	MovementType    string          `json:"movementType"`
	Amount          decimal.Decimal `json:"amount"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	JournalEntryID    string                     `json:"journalEntryID"`
	ID                int64                      `json:"id"`
	Description       string                     `json:"description"`
	AuxiliarySystemID string                     `json:"auxiliarySystemID"`
	EntryDate         time.Time                  `json:"entryDate"`
	Status            string                     `json:"status"`
	Lines             []JournalEntryLineResponse `json:"lines"`
	CreatedAt         time.Time                  `json:"createdAt"`
	UpdatedAt         time.Time                  `json:"updatedAt"`
}

// ListJournalEntriesResponse pairs a page of entries with the total count.
type ListJournalEntriesResponse struct {
	Items []JournalEntryResponse `json:"items"`
	Total int64                  `json:"total"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalEntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalEntryLineResponse{
			LineID:          l.LineID,
			LedgerAccountID: l.LedgerAccountID,
			MovementType:    string(l.MovementType),
			Amount:          l.Amount,
		}
	}
	return JournalEntryResponse{
		JournalEntryID:    e.JournalEntryID,
		ID:                e.SequenceID,
		Description:       e.Description,
		AuxiliarySystemID: e.AuxiliarySystemID,
		EntryDate:         e.EntryDate,
		Status:            string(e.Status),
		Lines:             lines,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain journal entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}
