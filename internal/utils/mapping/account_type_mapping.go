package mapping

import (
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelAccountType converts a domain AccountType to a model AccountType
func ToModelAccountType(d domain.AccountType) models.AccountType {
	return models.AccountType{
		AccountTypeID: d.AccountTypeID,
		SequenceID:    d.SequenceID,
		Description:   d.Description,
		Origin:        string(d.Origin),
		Active:        d.Active,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountType converts a model AccountType to a domain AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		AccountTypeID: m.AccountTypeID,
		SequenceID:    m.SequenceID,
		Description:   m.Description,
		Origin:        domain.Origin(m.Origin),
		Active:        m.Active,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountTypeSlice converts a slice of model AccountTypes to a slice of domain AccountTypes
func ToDomainAccountTypeSlice(ms []models.AccountType) []domain.AccountType {
	ds := make([]domain.AccountType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountType(m)
	}
	return ds
}
