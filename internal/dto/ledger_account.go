package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerAccountRequest defines the data needed to create a ledger
// account. References use the human-facing sequence ids; the service
// resolves them to internal identifiers before persisting.
type CreateLedgerAccountRequest struct {
	Description        string          `json:"description" binding:"required"`
	AccountTypeID      int64           `json:"accountTypeID" binding:"required"`
	AllowsTransactions bool            `json:"allowsTransactions"`
	Level              int             `json:"level" binding:"required,min=1,max=3"`
	ParentAccountID    *int64          `json:"parentAccountID,omitempty"`
	Balance            decimal.Decimal `json:"balance"`
}

// UpdateLedgerAccountRequest defines the editable fields of a ledger account.
type UpdateLedgerAccountRequest struct {
	Description        *string          `json:"description,omitempty"`
	AccountTypeID      *int64           `json:"accountTypeID,omitempty"`
	AllowsTransactions *bool            `json:"allowsTransactions,omitempty"`
	Level              *int             `json:"level,omitempty" binding:"omitempty,min=1,max=3"`
	ParentAccountID    *int64           `json:"parentAccountID,omitempty"`
	Balance            *decimal.Decimal `json:"balance,omitempty"`
	Active             *bool            `json:"active,omitempty"`
}

// LedgerAccountFilter is the typed query filter for listing ledger accounts.
type LedgerAccountFilter struct {
	SequenceID      int64  `form:"id"`
	Description     string `form:"description"`
	Level           *int   `form:"level"`
	ParentAccountID int64  `form:"parentAccountID"`
	Active          *bool  `form:"active"`
	PageParams

	// Resolved internal identifier for ParentAccountID, filled by the
	// service. Never bound from the request.
	ParentAccountUUID string `form:"-" json:"-"`
}

// LedgerAccountResponse defines the data returned for a ledger account.
type LedgerAccountResponse struct {
	LedgerAccountID    string          `json:"ledgerAccountID"`
	ID                 int64           `json:"id"`
	Description        string          `json:"description"`
	AccountTypeID      string          `json:"accountTypeID"`
	AllowsTransactions bool            `json:"allowsTransactions"`
	Level              int             `json:"level"`
	ParentAccountID    string          `json:"parentAccountID,omitempty"`
	Balance            decimal.Decimal `json:"balance"`
	Active             bool            `json:"active"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// ListLedgerAccountsResponse pairs a page of accounts with the total count.
type ListLedgerAccountsResponse struct {
	Items []LedgerAccountResponse `json:"items"`
	Total int64                   `json:"total"`
}

// ToLedgerAccountResponse converts a domain.LedgerAccount to its DTO.
func ToLedgerAccountResponse(a *domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		LedgerAccountID:    a.LedgerAccountID,
		ID:                 a.SequenceID,
		Description:        a.Description,
		AccountTypeID:      a.AccountTypeID,
		AllowsTransactions: a.AllowsTransactions,
		Level:              a.Level,
		ParentAccountID:    a.ParentAccountID,
		Balance:            a.Balance,
		Active:             a.Active,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// ToLedgerAccountResponses converts a slice of domain ledger accounts.
func ToLedgerAccountResponses(accounts []domain.LedgerAccount) []LedgerAccountResponse {
	res := make([]LedgerAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToLedgerAccountResponse(&accounts[i])
	}
	return res
}
