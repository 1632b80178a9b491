package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// LedgerAccount mirrors the ledger_accounts table. ParentAccountID is
// nullable; grouping accounts at level 1 have no parent.
type LedgerAccount struct {
	LedgerAccountID    string          `db:"ledger_account_id"`
	SequenceID         int64           `db:"sequence_id"`
	Description        string          `db:"description"`
	AccountTypeID      string          `db:"account_type_id"`
	AllowsTransactions bool            `db:"allows_transactions"`
	Level              int             `db:"level"`
	ParentAccountID    sql.NullString  `db:"parent_account_id"`
	Balance            decimal.Decimal `db:"balance"`
	Active             bool            `db:"active"`
	AuditFields
}
