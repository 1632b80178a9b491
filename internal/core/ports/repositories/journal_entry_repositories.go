package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// JournalEntryReader defines read operations for journal entry data.
// Entries are always returned with their full line list.
type JournalEntryReader interface {
	FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
	FindJournalEntryBySequenceID(ctx context.Context, sequenceID int64) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error)
}

// JournalEntryWriter defines write operations for journal entry data. Both
// methods persist the header and its lines inside one database transaction;
// a partially written entry is never observable.
type JournalEntryWriter interface {
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntry replaces the header fields and the full line list
	// of an existing entry. Returns apperrors.ErrNotFound when no entry
	// matches.
	UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
