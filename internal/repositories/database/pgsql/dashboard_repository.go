package pgsql

import (
	"context"
	"fmt"

	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDashboardRepository struct {
	BaseRepository
}

// newPgxDashboardRepository creates a new repository for dashboard aggregates.
func newPgxDashboardRepository(pool *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

// GetSystemSummary counts the registry entities in a single round trip.
func (r *PgxDashboardRepository) GetSystemSummary(ctx context.Context) (*domain.SystemSummary, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM ledger_accounts),
			(SELECT COUNT(*) FROM currencies),
			(SELECT COUNT(*) FROM account_types),
			(SELECT COUNT(*) FROM auxiliary_systems);
	`
	var summary domain.SystemSummary
	err := r.Pool.QueryRow(ctx, query).Scan(
		&summary.TotalLedgerAccounts,
		&summary.TotalCurrencies,
		&summary.TotalAccountTypes,
		&summary.TotalAuxiliarySystems,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query system summary: %w", err)
	}
	return &summary, nil
}
