package models

import "database/sql"

// User mirrors the users table.
type User struct {
	UserID            string         `db:"user_id"`
	SequenceID        int64          `db:"sequence_id"`
	Name              string         `db:"name"`
	Email             string         `db:"email"`
	PasswordHash      string         `db:"password_hash"`
	AuxiliarySystemID sql.NullString `db:"auxiliary_system_id"`
	Active            bool           `db:"active"`
	LastAccess        sql.NullTime   `db:"last_access"`
	AuditFields
}
