package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExchangeRateProvider fetches live exchange rates from an external source.
// Implementations live outside the core so the currency service stays
// independent of the provider's transport and payload shape.
type ExchangeRateProvider interface {
	// FetchRate returns the current rate for the given ISO 4217 code.
	FetchRate(ctx context.Context, isoCode string) (decimal.Decimal, error)
}
