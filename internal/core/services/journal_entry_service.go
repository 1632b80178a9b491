package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
)

// journalEntryService provides the journal entry operations. It owns the
// double-entry invariants: at least two lines with both sides present,
// positive amounts, exactly balanced debits and credits, and only postable
// accounts as line targets.
type journalEntryService struct {
	journalEntryRepo    portsrepo.JournalEntryRepositoryFacade
	ledgerAccountRepo   portsrepo.LedgerAccountRepositoryFacade
	auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade
	counterRepo         portsrepo.CounterRepository
}

// NewJournalEntryService creates a new journal entry service.
func NewJournalEntryService(journalEntryRepo portsrepo.JournalEntryRepositoryFacade, ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade, auxiliarySystemRepo portsrepo.AuxiliarySystemRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		journalEntryRepo:    journalEntryRepo,
		ledgerAccountRepo:   ledgerAccountRepo,
		auxiliarySystemRepo: auxiliarySystemRepo,
		counterRepo:         counterRepo,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// resolveAuxiliarySystem returns the internal id of the tenant the entry
// belongs to. Callers bound to an auxiliary system always write to their
// own tenant; whatever the request names is ignored. Global callers must
// name an existing tenant.
func (s *journalEntryService) resolveAuxiliarySystem(ctx context.Context, caller domain.Caller, requestedSequenceID int64) (string, error) {
	if !caller.IsGlobal() {
		return caller.AuxiliarySystemID, nil
	}
	if requestedSequenceID == 0 {
		return "", fmt.Errorf("%w: auxiliarySystemID is required", apperrors.ErrValidation)
	}
	system, err := s.auxiliarySystemRepo.FindAuxiliarySystemBySequenceID(ctx, requestedSequenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: auxiliary system %d does not exist", apperrors.ErrValidation, requestedSequenceID)
		}
		return "", err
	}
	return system.AuxiliarySystemID, nil
}

// buildLines validates the proposed lines and resolves their account
// references. The returned lines carry fresh ids; the entry id is stamped
// by the caller.
func (s *journalEntryService) buildLines(ctx context.Context, reqLines []dto.CreateJournalEntryLineRequest) ([]domain.JournalEntryLine, error) {
	if len(reqLines) < 2 {
		return nil, fmt.Errorf("%w: a journal entry needs at least two lines", apperrors.ErrValidation)
	}

	sequenceIDs := make([]int64, 0, len(reqLines))
	seen := make(map[int64]bool, len(reqLines))
	for _, line := range reqLines {
		if !seen[line.AccountID] {
			seen[line.AccountID] = true
			sequenceIDs = append(sequenceIDs, line.AccountID)
		}
	}

	accounts, err := s.ledgerAccountRepo.FindLedgerAccountsBySequenceIDs(ctx, sequenceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve line accounts: %w", err)
	}

	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	hasDebit, hasCredit := false, false
	lines := make([]domain.JournalEntryLine, 0, len(reqLines))

	for _, reqLine := range reqLines {
		movement := domain.MovementType(reqLine.MovementType)
		if !movement.IsValid() {
			return nil, fmt.Errorf("%w: movement type must be DEBIT or CREDIT", apperrors.ErrValidation)
		}
		if !reqLine.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: line amounts must be positive", apperrors.ErrValidation)
		}

		account, ok := accounts[reqLine.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: ledger account %d does not exist", apperrors.ErrValidation, reqLine.AccountID)
		}
		if !account.AllowsTransactions {
			return nil, fmt.Errorf("%w: ledger account %d does not allow transactions", apperrors.ErrValidation, reqLine.AccountID)
		}
		if !account.Active {
			return nil, fmt.Errorf("%w: ledger account %d is inactive", apperrors.ErrValidation, reqLine.AccountID)
		}

		if movement == domain.Debit {
			hasDebit = true
			debitsSum = debitsSum.Add(reqLine.Amount)
		} else {
			hasCredit = true
			creditsSum = creditsSum.Add(reqLine.Amount)
		}

		lines = append(lines, domain.JournalEntryLine{
			LineID:          uuid.NewString(),
			LedgerAccountID: account.LedgerAccountID,
			MovementType:    movement,
			Amount:          reqLine.Amount,
		})
	}

	if !hasDebit || !hasCredit {
		return nil, fmt.Errorf("%w: a journal entry needs at least one debit and one credit line", apperrors.ErrValidation)
	}
	if !debitsSum.Equal(creditsSum) {
		return nil, fmt.Errorf("%w: debits (%s) and credits (%s) must balance exactly", apperrors.ErrValidation, debitsSum.String(), creditsSum.String())
	}

	return lines, nil
}

func validateEntryDate(entryDate time.Time) error {
	if entryDate.After(time.Now()) {
		return fmt.Errorf("%w: entry date cannot be in the future", apperrors.ErrValidation)
	}
	return nil
}

func (s *journalEntryService) CreateJournalEntry(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := validateEntryDate(req.EntryDate); err != nil {
		return nil, err
	}

	auxiliarySystemID, err := s.resolveAuxiliarySystem(ctx, caller, req.AuxiliarySystemID)
	if err != nil {
		return nil, err
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityJournalEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to mint journal entry sequence id: %w", err)
	}

	now := time.Now()
	entry := domain.JournalEntry{
		JournalEntryID:    uuid.NewString(),
		SequenceID:        sequenceID,
		Description:       req.Description,
		AuxiliarySystemID: auxiliarySystemID,
		EntryDate:         req.EntryDate,
		Status:            domain.Registered,
		Lines:             lines,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for i := range entry.Lines {
		entry.Lines[i].JournalEntryID = entry.JournalEntryID
	}

	if err := s.journalEntryRepo.SaveJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("journal entry created", "sequence_id", sequenceID, "lines", len(lines))
	return &entry, nil
}

func (s *journalEntryService) UpdateJournalEntry(ctx context.Context, caller domain.Caller, sequenceID int64, req dto.UpdateJournalEntryRequest) (*domain.JournalEntry, error) {
	entry, err := s.journalEntryRepo.FindJournalEntryBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}
	if !caller.IsGlobal() && entry.AuxiliarySystemID != caller.AuxiliarySystemID {
		return nil, fmt.Errorf("%w: journal entry belongs to another auxiliary system", apperrors.ErrForbidden)
	}

	if err := validateEntryDate(req.EntryDate); err != nil {
		return nil, err
	}

	auxiliarySystemID, err := s.resolveAuxiliarySystem(ctx, caller, req.AuxiliarySystemID)
	if err != nil {
		return nil, err
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].JournalEntryID = entry.JournalEntryID
	}

	entry.Description = req.Description
	entry.AuxiliarySystemID = auxiliarySystemID
	entry.EntryDate = req.EntryDate
	entry.Lines = lines
	if req.Status != nil {
		status := domain.EntryStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: status must be REGISTERED or CANCELED", apperrors.ErrValidation)
		}
		entry.Status = status
	}
	entry.UpdatedAt = time.Now()

	if err := s.journalEntryRepo.UpdateJournalEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return entry, nil
}

func (s *journalEntryService) GetJournalEntryBySequenceID(ctx context.Context, caller domain.Caller, sequenceID int64) (*domain.JournalEntry, error) {
	entry, err := s.journalEntryRepo.FindJournalEntryBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}
	if !caller.IsGlobal() && entry.AuxiliarySystemID != caller.AuxiliarySystemID {
		return nil, fmt.Errorf("%w: journal entry belongs to another auxiliary system", apperrors.ErrForbidden)
	}
	return entry, nil
}

func (s *journalEntryService) ListJournalEntries(ctx context.Context, caller domain.Caller, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	filter.Normalize()

	if !caller.IsGlobal() {
		// Tenant-bound callers only ever see their own entries.
		filter.AuxiliarySystemUUID = caller.AuxiliarySystemID
	} else if filter.AuxiliarySystemID != 0 {
		system, err := s.auxiliarySystemRepo.FindAuxiliarySystemBySequenceID(ctx, filter.AuxiliarySystemID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.JournalEntry{}, 0, nil
			}
			return nil, 0, err
		}
		filter.AuxiliarySystemUUID = system.AuxiliarySystemID
	}

	if filter.AccountID != 0 {
		account, err := s.ledgerAccountRepo.FindLedgerAccountBySequenceID(ctx, filter.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.JournalEntry{}, 0, nil
			}
			return nil, 0, err
		}
		filter.LedgerAccountUUID = account.LedgerAccountID
	}

	if filter.MovementType != "" && !domain.MovementType(filter.MovementType).IsValid() {
		return nil, 0, fmt.Errorf("%w: movement type must be DEBIT or CREDIT", apperrors.ErrValidation)
	}

	entries, total, err := s.journalEntryRepo.ListJournalEntries(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, total, nil
}
