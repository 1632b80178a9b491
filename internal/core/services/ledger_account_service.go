package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	portssvc "github.com/contable-dev/contabilidad_api/internal/core/ports/services"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/middleware"
)

// ledgerAccountService provides the chart-of-accounts operations. It owns
// the tree invariants: level bounds, parent nesting and non-negative
// balances.
type ledgerAccountService struct {
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade
	accountTypeRepo   portsrepo.AccountTypeRepositoryFacade
	counterRepo       portsrepo.CounterRepository
}

// NewLedgerAccountService creates a new ledger account service.
func NewLedgerAccountService(ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade, accountTypeRepo portsrepo.AccountTypeRepositoryFacade, counterRepo portsrepo.CounterRepository) portssvc.LedgerAccountSvcFacade {
	return &ledgerAccountService{
		ledgerAccountRepo: ledgerAccountRepo,
		accountTypeRepo:   accountTypeRepo,
		counterRepo:       counterRepo,
	}
}

var _ portssvc.LedgerAccountSvcFacade = (*ledgerAccountService)(nil)

// resolveParent validates the parent reference for an account at the given
// level and returns the parent's internal id.
func (s *ledgerAccountService) resolveParent(ctx context.Context, parentSequenceID int64, level int) (string, error) {
	parent, err := s.ledgerAccountRepo.FindLedgerAccountBySequenceID(ctx, parentSequenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: parent account %d does not exist", apperrors.ErrValidation, parentSequenceID)
		}
		return "", err
	}
	if parent.Level >= level {
		return "", fmt.Errorf("%w: parent account must sit at a smaller level than %d", apperrors.ErrValidation, level)
	}
	return parent.LedgerAccountID, nil
}

func (s *ledgerAccountService) CreateLedgerAccount(ctx context.Context, req dto.CreateLedgerAccountRequest) (*domain.LedgerAccount, error) {
	if req.Level < domain.MinAccountLevel || req.Level > domain.MaxAccountLevel {
		return nil, fmt.Errorf("%w: level must be between %d and %d", apperrors.ErrValidation, domain.MinAccountLevel, domain.MaxAccountLevel)
	}
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be negative", apperrors.ErrValidation)
	}

	accountType, err := s.accountTypeRepo.FindAccountTypeBySequenceID(ctx, req.AccountTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account type %d does not exist", apperrors.ErrValidation, req.AccountTypeID)
		}
		return nil, err
	}

	var parentAccountID string
	if req.ParentAccountID != nil {
		parentAccountID, err = s.resolveParent(ctx, *req.ParentAccountID, req.Level)
		if err != nil {
			return nil, err
		}
	}

	sequenceID, err := s.counterRepo.NextID(ctx, domain.EntityLedgerAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to mint ledger account sequence id: %w", err)
	}

	now := time.Now()
	account := domain.LedgerAccount{
		LedgerAccountID:    uuid.NewString(),
		SequenceID:         sequenceID,
		Description:        req.Description,
		AccountTypeID:      accountType.AccountTypeID,
		AllowsTransactions: req.AllowsTransactions,
		Level:              req.Level,
		ParentAccountID:    parentAccountID,
		Balance:            req.Balance,
		Active:             true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.ledgerAccountRepo.SaveLedgerAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create ledger account: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("ledger account created", "sequence_id", sequenceID, "level", req.Level)
	return &account, nil
}

func (s *ledgerAccountService) UpdateLedgerAccount(ctx context.Context, sequenceID int64, req dto.UpdateLedgerAccountRequest) (*domain.LedgerAccount, error) {
	account, err := s.ledgerAccountRepo.FindLedgerAccountBySequenceID(ctx, sequenceID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		account.Description = *req.Description
	}
	if req.AccountTypeID != nil {
		accountType, err := s.accountTypeRepo.FindAccountTypeBySequenceID(ctx, *req.AccountTypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account type %d does not exist", apperrors.ErrValidation, *req.AccountTypeID)
			}
			return nil, err
		}
		account.AccountTypeID = accountType.AccountTypeID
	}
	if req.AllowsTransactions != nil {
		account.AllowsTransactions = *req.AllowsTransactions
	}
	if req.Level != nil {
		if *req.Level < domain.MinAccountLevel || *req.Level > domain.MaxAccountLevel {
			return nil, fmt.Errorf("%w: level must be between %d and %d", apperrors.ErrValidation, domain.MinAccountLevel, domain.MaxAccountLevel)
		}
		account.Level = *req.Level
	}
	if req.ParentAccountID != nil {
		if *req.ParentAccountID == 0 {
			account.ParentAccountID = ""
		} else {
			parentID, err := s.resolveParent(ctx, *req.ParentAccountID, account.Level)
			if err != nil {
				return nil, err
			}
			account.ParentAccountID = parentID
		}
	} else if req.Level != nil && account.ParentAccountID != "" {
		// Re-check the existing parent against the new level.
		parent, err := s.ledgerAccountRepo.FindLedgerAccountByID(ctx, account.ParentAccountID)
		if err != nil {
			return nil, err
		}
		if parent.Level >= account.Level {
			return nil, fmt.Errorf("%w: parent account must sit at a smaller level than %d", apperrors.ErrValidation, account.Level)
		}
	}
	if req.Balance != nil {
		if req.Balance.IsNegative() {
			return nil, fmt.Errorf("%w: balance cannot be negative", apperrors.ErrValidation)
		}
		account.Balance = *req.Balance
	}
	if req.Active != nil {
		account.Active = *req.Active
	}
	account.UpdatedAt = time.Now()

	if err := s.ledgerAccountRepo.UpdateLedgerAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update ledger account: %w", err)
	}

	return account, nil
}

func (s *ledgerAccountService) GetLedgerAccountBySequenceID(ctx context.Context, sequenceID int64) (*domain.LedgerAccount, error) {
	return s.ledgerAccountRepo.FindLedgerAccountBySequenceID(ctx, sequenceID)
}

func (s *ledgerAccountService) ListLedgerAccounts(ctx context.Context, filter dto.LedgerAccountFilter) ([]domain.LedgerAccount, int64, error) {
	filter.Normalize()

	if filter.ParentAccountID != 0 {
		parent, err := s.ledgerAccountRepo.FindLedgerAccountBySequenceID(ctx, filter.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return []domain.LedgerAccount{}, 0, nil
			}
			return nil, 0, err
		}
		filter.ParentAccountUUID = parent.LedgerAccountID
	}

	accounts, total, err := s.ledgerAccountRepo.ListLedgerAccounts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.LedgerAccount{}
	}
	return accounts, total, nil
}
