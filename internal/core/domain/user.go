package domain

import "time"

// User is an authenticated caller. A user bound to an auxiliary system only
// sees that tenant's journal entries; a user with no binding is global and
// may operate across tenants.
type User struct {
	UserID            string     `json:"userID"` // Primary key (UUID)
	SequenceID        int64      `json:"id"`     // Human-facing sequence id
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	AuxiliarySystemID string     `json:"auxiliarySystemID,omitempty"` // Nullable FK (UUID); empty = global
	Active            bool       `json:"active"`
	LastAccess        *time.Time `json:"lastAccess,omitempty"`
	AuditFields
}

// IsGlobal reports whether the user has no tenant binding and may act
// across all auxiliary systems.
func (u *User) IsGlobal() bool {
	return u.AuxiliarySystemID == ""
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume
// when completing an OAuth login.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
