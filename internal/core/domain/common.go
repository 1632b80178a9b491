package domain

import "time"

// AuditFields holds standard timestamp information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Counter entity names. Each name keys one row in the counters table and
// scopes the human-facing sequence ids minted for that entity.
const (
	EntityAccountType     = "AccountTypes"
	EntityCurrency        = "Currencies"
	EntityAuxiliarySystem = "AuxiliarySystems"
	EntityLedgerAccount   = "LedgerAccounts"
	EntityJournalEntry    = "JournalEntries"
	EntityUser            = "Users"
)
