package dto

import "github.com/contable-dev/contabilidad_api/internal/core/domain"

// SystemSummaryResponse carries the entity counts for the admin dashboard.
type SystemSummaryResponse struct {
	TotalLedgerAccounts   int64 `json:"totalLedgerAccounts"`
	TotalCurrencies       int64 `json:"totalCurrencies"`
	TotalAccountTypes     int64 `json:"totalAccountTypes"`
	TotalAuxiliarySystems int64 `json:"totalAuxiliarySystems"`
}

// ToSystemSummaryResponse converts a domain.SystemSummary to its DTO.
func ToSystemSummaryResponse(s *domain.SystemSummary) SystemSummaryResponse {
	return SystemSummaryResponse{
		TotalLedgerAccounts:   s.TotalLedgerAccounts,
		TotalCurrencies:       s.TotalCurrencies,
		TotalAccountTypes:     s.TotalAccountTypes,
		TotalAuxiliarySystems: s.TotalAuxiliarySystems,
	}
}
