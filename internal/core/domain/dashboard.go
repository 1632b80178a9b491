package domain

// SystemSummary carries the entity counts shown on the admin dashboard.
type SystemSummary struct {
	TotalLedgerAccounts   int64 `json:"totalLedgerAccounts"`
	TotalCurrencies       int64 `json:"totalCurrencies"`
	TotalAccountTypes     int64 `json:"totalAccountTypes"`
	TotalAuxiliarySystems int64 `json:"totalAuxiliarySystems"`
}
