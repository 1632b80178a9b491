package dto

import (
	"time"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
)

// CreateAuxiliarySystemRequest defines the data needed to register a tenant.
type CreateAuxiliarySystemRequest struct {
	Description string `json:"description" binding:"required"`
}

// UpdateAuxiliarySystemRequest defines the editable fields of a tenant.
type UpdateAuxiliarySystemRequest struct {
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// AuxiliarySystemFilter is the typed query filter for listing tenants.
type AuxiliarySystemFilter struct {
	SequenceID  int64  `form:"id"`
	Description string `form:"description"`
	Active      *bool  `form:"active"`
	PageParams
}

// AuxiliarySystemResponse defines the data returned for a tenant.
type AuxiliarySystemResponse struct {
	AuxiliarySystemID string    `json:"auxiliarySystemID"`
	ID                int64     `json:"id"`
	Description       string    `json:"description"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ListAuxiliarySystemsResponse pairs a page of tenants with the total count.
type ListAuxiliarySystemsResponse struct {
	Items []AuxiliarySystemResponse `json:"items"`
	Total int64                     `json:"total"`
}

// ToAuxiliarySystemResponse converts a domain.AuxiliarySystem to its DTO.
func ToAuxiliarySystemResponse(s *domain.AuxiliarySystem) AuxiliarySystemResponse {
	return AuxiliarySystemResponse{
		AuxiliarySystemID: s.AuxiliarySystemID,
		ID:                s.SequenceID,
		Description:       s.Description,
		Active:            s.Active,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToAuxiliarySystemResponses converts a slice of domain tenants.
func ToAuxiliarySystemResponses(systems []domain.AuxiliarySystem) []AuxiliarySystemResponse {
	res := make([]AuxiliarySystemResponse, len(systems))
	for i := range systems {
		res[i] = ToAuxiliarySystemResponse(&systems[i])
	}
	return res
}
