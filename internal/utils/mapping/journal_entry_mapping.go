package mapping

import (
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Lines are mapped separately since they live in their own table.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID:    d.JournalEntryID,
		SequenceID:        d.SequenceID,
		Description:       d.Description,
		AuxiliarySystemID: d.AuxiliarySystemID,
		EntryDate:         d.EntryDate,
		Status:            string(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID:    m.JournalEntryID,
		SequenceID:        m.SequenceID,
		Description:       m.Description,
		AuxiliarySystemID: m.AuxiliarySystemID,
		EntryDate:         m.EntryDate,
		Status:            domain.EntryStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain JournalEntryLine to a model JournalEntryLine
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:          d.LineID,
		JournalEntryID:  d.JournalEntryID,
		LedgerAccountID: d.LedgerAccountID,
		MovementType:    string(d.MovementType),
		Amount:          d.Amount,
	}
}

// ToDomainJournalEntryLine converts a model JournalEntryLine to a domain JournalEntryLine
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:          m.LineID,
		JournalEntryID:  m.JournalEntryID,
		LedgerAccountID: m.LedgerAccountID,
		MovementType:    domain.MovementType(m.MovementType),
		Amount:          m.Amount,
	}
}

// ToDomainJournalEntryLineSlice converts a slice of model JournalEntryLines to a slice of domain JournalEntryLines
func ToDomainJournalEntryLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntryLine(m)
	}
	return ds
}
