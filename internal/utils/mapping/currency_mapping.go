package mapping

import (
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:       d.CurrencyID,
		SequenceID:       d.SequenceID,
		ISOCode:          d.ISOCode,
		Description:      d.Description,
		LastExchangeRate: d.LastExchangeRate,
		Active:           d.Active,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:       m.CurrencyID,
		SequenceID:       m.SequenceID,
		ISOCode:          m.ISOCode,
		Description:      m.Description,
		LastExchangeRate: m.LastExchangeRate,
		Active:           m.Active,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
