package services

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// JournalEntrySvcFacade exposes the journal entry operations. Every method
// takes the authenticated caller so tenant scoping can be enforced: callers
// bound to an auxiliary system only ever see and write entries of that
// system, regardless of what the request claims.
type JournalEntrySvcFacade interface {
	CreateJournalEntry(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, caller domain.Caller, sequenceID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error)
	GetJournalEntryBySequenceID(ctx context.Context, caller domain.Caller, sequenceID int64) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, caller domain.Caller, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error)
}
