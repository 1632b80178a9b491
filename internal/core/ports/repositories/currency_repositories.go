package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	FindCurrencyBySequenceID(ctx context.Context, sequenceID int64) (*domain.Currency, error)
	FindCurrencyByISOCode(ctx context.Context, isoCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, filter dto.CurrencyFilter) ([]domain.Currency, int64, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
