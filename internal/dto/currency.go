package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a currency.
type CreateCurrencyRequest struct {
	ISOCode          string          `json:"isoCode" binding:"required,uppercase,len=3"`
	Description      string          `json:"description" binding:"required"`
	LastExchangeRate decimal.Decimal `json:"lastExchangeRate"`
}

// UpdateCurrencyRequest defines the editable fields of a currency.
type UpdateCurrencyRequest struct {
	ISOCode          *string          `json:"isoCode,omitempty" binding:"omitempty,uppercase,len=3"`
	Description      *string          `json:"description,omitempty"`
	LastExchangeRate *decimal.Decimal `json:"lastExchangeRate,omitempty"`
	Active           *bool            `json:"active,omitempty"`
}

// CurrencyFilter is the typed query filter for listing currencies.
type CurrencyFilter struct {
	SequenceID  int64  `form:"id"`
	ISOCode     string `form:"isoCode"`
	Description string `form:"description"`
	Active      *bool  `form:"active"`
	PageParams
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyID       string          `json:"currencyID"`
	ID               int64           `json:"id"`
	ISOCode          string          `json:"isoCode"`
	Description      string          `json:"description"`
	LastExchangeRate decimal.Decimal `json:"lastExchangeRate"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ListCurrenciesResponse pairs a page of currencies with the total count.
type ListCurrenciesResponse struct {
	Items []CurrencyResponse `json:"items"`
	Total int64              `json:"total"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:       c.CurrencyID,
		ID:               c.SequenceID,
		ISOCode:          c.ISOCode,
		Description:      c.Description,
		LastExchangeRate: c.LastExchangeRate,
		Active:           c.Active,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToCurrencyResponses converts a slice of domain currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
