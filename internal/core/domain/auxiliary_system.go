package domain

// AuxiliarySystem is an external subsystem/tenant on whose behalf journal
// entries are posted. Users carry an optional binding to one auxiliary
// system; that binding scopes which entries they may touch.
type AuxiliarySystem struct {
	AuxiliarySystemID string `json:"auxiliarySystemID"` // Primary key (UUID)
	SequenceID        int64  `json:"id"`                // Human-facing sequence id
	Description       string `json:"description"`
	Active            bool   `json:"active"`
	AuditFields
}
