package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency with its last known exchange rate.
// The rate is maintained manually or via the external rate refresh; it is
// never consulted when posting journal entries.
type Currency struct {
	CurrencyID       string          `json:"currencyID"` // Primary key (UUID)
	SequenceID       int64           `json:"id"`         // Human-facing sequence id
	ISOCode          string          `json:"isoCode"`    // e.g. "USD"
	Description      string          `json:"description"`
	LastExchangeRate decimal.Decimal `json:"lastExchangeRate"`
	Active           bool            `json:"active"`
	AuditFields
}
