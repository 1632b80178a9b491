package mapping

import (
	"database/sql"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelLedgerAccount converts a domain LedgerAccount to a model LedgerAccount
func ToModelLedgerAccount(d domain.LedgerAccount) models.LedgerAccount {
	var parent sql.NullString
	if d.ParentAccountID != "" {
		parent = sql.NullString{String: d.ParentAccountID, Valid: true}
	}
	return models.LedgerAccount{
		LedgerAccountID:    d.LedgerAccountID,
		SequenceID:         d.SequenceID,
		Description:        d.Description,
		AccountTypeID:      d.AccountTypeID,
		AllowsTransactions: d.AllowsTransactions,
		Level:              d.Level,
		ParentAccountID:    parent,
		Balance:            d.Balance,
		Active:             d.Active,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerAccount converts a model LedgerAccount to a domain LedgerAccount
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		LedgerAccountID:    m.LedgerAccountID,
		SequenceID:         m.SequenceID,
		Description:        m.Description,
		AccountTypeID:      m.AccountTypeID,
		AllowsTransactions: m.AllowsTransactions,
		Level:              m.Level,
		ParentAccountID:    m.ParentAccountID.String,
		Balance:            m.Balance,
		Active:             m.Active,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerAccountSlice converts a slice of model LedgerAccounts to a slice of domain LedgerAccounts
func ToDomainLedgerAccountSlice(ms []models.LedgerAccount) []domain.LedgerAccount {
	ds := make([]domain.LedgerAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerAccount(m)
	}
	return ds
}
