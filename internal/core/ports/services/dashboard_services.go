package services

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
)

// DashboardSvcFacade exposes aggregate counters for the registry entities.
type DashboardSvcFacade interface {
	GetSystemSummary(ctx context.Context) (*domain.SystemSummary, error)
}
