package services

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	"github.com/contable-dev/contabilidad_api/internal/dto"
)

// LedgerAccountSvcFacade exposes the chart-of-accounts operations.
type LedgerAccountSvcFacade interface {
	CreateLedgerAccount(ctx context.Context, req dto.CreateLedgerAccountRequest) (*domain.LedgerAccount, error)
	UpdateLedgerAccount(ctx context.Context, sequenceID int64, req dto.UpdateLedgerAccountRequest) (*domain.LedgerAccount, error)
	GetLedgerAccountBySequenceID(ctx context.Context, sequenceID int64) (*domain.LedgerAccount, error)
	ListLedgerAccounts(ctx context.Context, filter dto.LedgerAccountFilter) ([]domain.LedgerAccount, int64, error)
}
