package domain

// Origin classifies an account type by the side that increases its balance.
type Origin string

const (
	OriginDebit  Origin = "DEBIT"
	OriginCredit Origin = "CREDIT"
)

// IsValid reports whether the origin is one of the two allowed codes.
func (o Origin) IsValid() bool {
	return o == OriginDebit || o == OriginCredit
}

// AccountType is a classification referenced by ledger accounts.
// Types are never hard-deleted; deactivation uses the Active flag.
type AccountType struct {
	AccountTypeID string `json:"accountTypeID"` // Primary key (UUID)
	SequenceID    int64  `json:"id"`            // Human-facing sequence id
	Description   string `json:"description"`
	Origin        Origin `json:"origin"`
	Active        bool   `json:"active"`
	AuditFields
}
