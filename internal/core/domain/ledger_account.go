package domain

import "github.com/shopspring/decimal"

// Chart-of-accounts nesting bounds.
const (
	MinAccountLevel = 1
	MaxAccountLevel = 3
)

// LedgerAccount is a node in the chart of accounts. Accounts that allow
// transactions may appear as journal-entry lines; the rest are grouping
// nodes. A parent ("cuenta mayor") must sit at a strictly smaller level.
type LedgerAccount struct {
	LedgerAccountID string          `json:"ledgerAccountID"` // Primary key (UUID)
	SequenceID      int64           `json:"id"`              // Human-facing sequence id
	Description     string          `json:"description"`
	AccountTypeID   string          `json:"accountTypeID"` // FK -> account_types (UUID)
	AllowsTransactions bool         `json:"allowsTransactions"`
	Level           int             `json:"level"`                     // 1..3
	ParentAccountID string          `json:"parentAccountID,omitempty"` // Nullable self-reference (UUID)
	Balance         decimal.Decimal `json:"balance"`
	Active          bool            `json:"active"`
	AuditFields
}
