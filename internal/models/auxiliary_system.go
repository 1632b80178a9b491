package models

// AuxiliarySystem mirrors the auxiliary_systems table.
type AuxiliarySystem struct {
	AuxiliarySystemID string `db:"auxiliary_system_id"`
	SequenceID        int64  `db:"sequence_id"`
	Description       string `db:"description"`
	Active            bool   `db:"active"`
	AuditFields
}
