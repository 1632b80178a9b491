package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCounterRepository struct {
	BaseRepository
}

// newPgxCounterRepository creates a new repository for sequence id counters.
func newPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepository {
	return &PgxCounterRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CounterRepository = (*PgxCounterRepository)(nil)

// NextID atomically increments the counter for entityName and returns the
// new value, creating the row with value 1 when absent. The upsert executes
// as a single statement, so concurrent callers never observe duplicates.
func (r *PgxCounterRepository) NextID(ctx context.Context, entityName string) (int64, error) {
	query := `
		INSERT INTO counters (entity_name, last_id)
		VALUES ($1, 1)
		ON CONFLICT (entity_name) DO UPDATE SET last_id = counters.last_id + 1
		RETURNING last_id;
	`
	var lastID int64
	if err := r.Pool.QueryRow(ctx, query, entityName).Scan(&lastID); err != nil {
		return 0, fmt.Errorf("failed to advance counter for %s: %w", entityName, err)
	}
	return lastID, nil
}
