package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Registered EntryStatus = "REGISTERED"
	Canceled   EntryStatus = "CANCELED"
)

// IsValid reports whether the status is one of the two known values.
func (s EntryStatus) IsValid() bool {
	return s == Registered || s == Canceled
}

// MovementType is the two-sided classification of a posting line.
type MovementType string

const (
	Debit  MovementType = "DEBIT"
	Credit MovementType = "CREDIT"
)

// IsValid reports whether the movement type is DEBIT or CREDIT.
func (m MovementType) IsValid() bool {
	return m == Debit || m == Credit
}

// JournalEntry is a dated, described transaction composed of at least two
// balanced debit/credit lines. Lines have no lifecycle of their own; they
// are persisted and replaced together with their entry.
type JournalEntry struct {
	JournalEntryID    string             `json:"journalEntryID"` // Primary key (UUID)
	SequenceID        int64              `json:"id"`             // Human-facing sequence id
	Description       string             `json:"description"`
	AuxiliarySystemID string             `json:"auxiliarySystemID"` // FK -> auxiliary_systems (UUID)
	EntryDate         time.Time          `json:"entryDate"`
	Status            EntryStatus        `json:"status"`
	Lines             []JournalEntryLine `json:"lines"`
	AuditFields
}

// JournalEntryLine is a single posting against one ledger account.
type JournalEntryLine struct {
	LineID          string          `json:"lineID"`          // Primary key (UUID)
	JournalEntryID  string          `json:"journalEntryID"`  // FK -> journal_entries (UUID)
	LedgerAccountID string          `json:"ledgerAccountID"` // FK -> ledger_accounts (UUID)
	MovementType    MovementType    `json:"movementType"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
}
