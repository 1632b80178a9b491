package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
)

// CreateAccountTypeRequest defines the data needed to create an account type.
type CreateAccountTypeRequest struct {
	Description string `json:"description" binding:"required"`
	Origin      string `json:"origin" binding:"required,oneof=DEBIT CREDIT"`
}

// UpdateAccountTypeRequest defines the editable fields of an account type.
// Nil fields are left unchanged.
type UpdateAccountTypeRequest struct {
	Description *string `json:"description,omitempty"`
	Origin      *string `json:"origin,omitempty" binding:"omitempty,oneof=DEBIT CREDIT"`
	Active      *bool   `json:"active,omitempty"`
}

// AccountTypeFilter is the typed query filter for listing account types.
// Zero values mean "unfiltered" except Active, whose absence is expressed
// by a nil pointer.
type AccountTypeFilter struct {
	SequenceID  int64  `form:"id"`
	Description string `form:"description"`
	Origin      string `form:"origin"`
	Active      *bool  `form:"active"`
	PageParams
}

// AccountTypeResponse defines the data returned for an account type.
type AccountTypeResponse struct {
	AccountTypeID string    `json:"accountTypeID"`
	ID            int64     `json:"id"`
	Description   string    `json:"description"`
	Origin        string    `json:"origin"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListAccountTypesResponse pairs a page of account types with the total
// number of matches before pagination.
type ListAccountTypesResponse struct {
	Items []AccountTypeResponse `json:"items"`
	Total int64                 `json:"total"`
}

// ToAccountTypeResponse converts a domain.AccountType to its response DTO.
func ToAccountTypeResponse(t *domain.AccountType) AccountTypeResponse {
	return AccountTypeResponse{
		AccountTypeID: t.AccountTypeID,
		ID:            t.SequenceID,
		Description:   t.Description,
		Origin:        string(t.Origin),
		Active:        t.Active,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToAccountTypeResponses converts a slice of domain account types.
func ToAccountTypeResponses(types []domain.AccountType) []AccountTypeResponse {
	res := make([]AccountTypeResponse, len(types))
	for i := range types {
		res[i] = ToAccountTypeResponse(&types[i])
	}
	return res
}
