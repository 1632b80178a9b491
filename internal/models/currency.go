package models

import "github.com/shopspring/decimal"

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyID       string          `db:"currency_id"`
	SequenceID       int64           `db:"sequence_id"`
	ISOCode          string          `db:"iso_code"`
	Description      string          `db:"description"`
	LastExchangeRate decimal.Decimal `db:"last_exchange_rate"`
	Active           bool            `db:"active"`
	AuditFields
}
