package domain

// Caller is the authenticated identity extracted from a validated bearer
// token. AuxiliarySystemID is the tenant binding (internal id); empty means
// the caller is global and may operate across tenants.
type Caller struct {
	UserID            string
	Name              string
	AuxiliarySystemID string
}

// IsGlobal reports whether the caller has no tenant binding.
func (c Caller) IsGlobal() bool {
	return c.AuxiliarySystemID == ""
}
