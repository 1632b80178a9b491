package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// LedgerAccountReader defines read operations for chart-of-accounts data.
type LedgerAccountReader interface {
	FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error)
	FindLedgerAccountBySequenceID(ctx context.Context, sequenceID int64) (*domain.LedgerAccount, error)

	// FindLedgerAccountsBySequenceIDs retrieves the accounts for the given
	// sequence ids, keyed by sequence id. Missing ids are simply absent
	// from the map.
	FindLedgerAccountsBySequenceIDs(ctx context.Context, sequenceIDs []int64) (map[int64]domain.LedgerAccount, error)

	ListLedgerAccounts(ctx context.Context, filter dto.LedgerAccountFilter) ([]domain.LedgerAccount, int64, error)
}

// LedgerAccountWriter defines write operations for chart-of-accounts data.
type LedgerAccountWriter interface {
	SaveLedgerAccount(ctx context.Context, account domain.LedgerAccount) error
	UpdateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error
}

// LedgerAccountRepositoryFacade combines all ledger account repository interfaces.
type LedgerAccountRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountWriter
}
