package mapping

import (
	"database/sql"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	var auxID sql.NullString
	if d.AuxiliarySystemID != "" {
		auxID = sql.NullString{String: d.AuxiliarySystemID, Valid: true}
	}
	var lastAccess sql.NullTime
	if d.LastAccess != nil {
		lastAccess = sql.NullTime{Time: *d.LastAccess, Valid: true}
	}
	return models.User{
		UserID:            d.UserID,
		SequenceID:        d.SequenceID,
		Name:              d.Name,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		AuxiliarySystemID: auxID,
		Active:            d.Active,
		LastAccess:        lastAccess,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:            m.UserID,
		SequenceID:        m.SequenceID,
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		AuxiliarySystemID: m.AuxiliarySystemID.String,
		Active:            m.Active,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.LastAccess.Valid {
		t := m.LastAccess.Time
		d.LastAccess = &t
	}
	return d
}
