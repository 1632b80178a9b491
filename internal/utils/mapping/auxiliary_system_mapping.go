package mapping

import (
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelAuxiliarySystem converts a domain AuxiliarySystem to a model AuxiliarySystem
func ToModelAuxiliarySystem(d domain.AuxiliarySystem) models.AuxiliarySystem {
	return models.AuxiliarySystem{
		AuxiliarySystemID: d.AuxiliarySystemID,
		SequenceID:        d.SequenceID,
		Description:       d.Description,
		Active:            d.Active,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAuxiliarySystem converts a model AuxiliarySystem to a domain AuxiliarySystem
func ToDomainAuxiliarySystem(m models.AuxiliarySystem) domain.AuxiliarySystem {
	return domain.AuxiliarySystem{
		AuxiliarySystemID: m.AuxiliarySystemID,
		SequenceID:        m.SequenceID,
		Description:       m.Description,
		Active:            m.Active,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAuxiliarySystemSlice converts a slice of model AuxiliarySystems to a slice of domain AuxiliarySystems
func ToDomainAuxiliarySystemSlice(ms []models.AuxiliarySystem) []domain.AuxiliarySystem {
	ds := make([]domain.AuxiliarySystem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuxiliarySystem(m)
	}
	return ds
}
