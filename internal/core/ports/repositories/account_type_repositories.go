package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// AccountTypeReader defines read operations for account type data.
type AccountTypeReader interface {
	// FindAccountTypeByID retrieves an account type by its internal id.
	FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error)

	// FindAccountTypeBySequenceID retrieves an account type by its
	// human-facing sequence id.
	FindAccountTypeBySequenceID(ctx context.Context, sequenceID int64) (*domain.AccountType, error)

	// ListAccountTypes returns the matching page plus the total match count
	// before pagination.
	ListAccountTypes(ctx context.Context, filter dto.AccountTypeFilter) ([]domain.AccountType, int64, error)
}

// AccountTypeWriter defines write operations for account type data.
type AccountTypeWriter interface {
	SaveAccountType(ctx context.Context, accountType domain.AccountType) error
	UpdateAccountType(ctx context.Context, accountType domain.AccountType) error
}

// AccountTypeRepositoryFacade combines all account type repository interfaces.
type AccountTypeRepositoryFacade interface {
	AccountTypeReader
	AccountTypeWriter
}
