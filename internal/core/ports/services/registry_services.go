package services

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// AccountTypeSvcFacade exposes the account type registry operations.
type AccountTypeSvcFacade interface {
	CreateAccountType(ctx context.Context, req dto.CreateAccountTypeRequest) (*domain.AccountType, error)

	// UpdateAccountType applies the non-nil fields of req to the account
	// type with the given sequence id.
	UpdateAccountType(ctx context.Context, sequenceID int64, req dto.UpdateAccountTypeRequest) (*domain.AccountType, error)

	GetAccountTypeBySequenceID(ctx context.Context, sequenceID int64) (*domain.AccountType, error)
	ListAccountTypes(ctx context.Context, filter dto.AccountTypeFilter) ([]domain.AccountType, int64, error)
}

// CurrencySvcFacade exposes the currency registry operations.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, sequenceID int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error)
	GetCurrencyBySequenceID(ctx context.Context, sequenceID int64) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, filter dto.CurrencyFilter) ([]domain.Currency, int64, error)

	// RefreshExchangeRate fetches the live rate for the currency's ISO code
	// from the external provider and persists it as the last known rate.
	RefreshExchangeRate(ctx context.Context, sequenceID int64) (*domain.Currency, error)
}

// AuxiliarySystemSvcFacade exposes the tenant registry operations.
type AuxiliarySystemSvcFacade interface {
	CreateAuxiliarySystem(ctx context.Context, req dto.CreateAuxiliarySystemRequest) (*domain.AuxiliarySystem, error)
	UpdateAuxiliarySystem(ctx context.Context, sequenceID int64, req dto.UpdateAuxiliarySystemRequest) (*domain.AuxiliarySystem, error)
	GetAuxiliarySystemBySequenceID(ctx context.Context, sequenceID int64) (*domain.AuxiliarySystem, error)
	ListAuxiliarySystems(ctx context.Context, filter dto.AuxiliarySystemFilter) ([]domain.AuxiliarySystem, int64, error)
}
