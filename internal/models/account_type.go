package models

// AccountType mirrors the account_types table.
type AccountType struct {
	AccountTypeID string `db:"account_type_id"`
	SequenceID    int64  `db:"sequence_id"`
	Description   string `db:"description"`
	Origin        string `db:"origin"` // DEBIT or CREDIT
	Active        bool   `db:"active"`
	AuditFields
}
