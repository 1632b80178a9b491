package repositories

import (
	"context"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
)

// DashboardRepository aggregates entity counts for the admin dashboard.
type DashboardRepository interface {
	GetSystemSummary(ctx context.Context) (*domain.SystemSummary, error)
}
