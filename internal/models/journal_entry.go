package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	JournalEntryID    string    `db:"journal_entry_id"`
	SequenceID        int64     `db:"sequence_id"`
	Description       string    `db:"description"`
	AuxiliarySystemID string    `db:"auxiliary_system_id"`
	EntryDate         time.Time `db:"entry_date"`
	Status            string    `db:"status"` // REGISTERED or CANCELED
	AuditFields
}

// JournalEntryLine mirrors the journal_entry_lines table.
type JournalEntryLine struct {
	LineID          string          `db:"line_id"`
	JournalEntryID  string          `db:"journal_entry_id"`
	LedgerAccountID string          `db:"ledger_account_id"`
	MovementType    string          `db:"movement_type"` // DEBIT or CREDIT
	Amount          decimal.Decimal `db:"amount"`
}
