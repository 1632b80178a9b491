package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/contable-dev/contabilidad_api/internal/apperrors"
	"github.com/contable-dev/contabilidad_api/internal/core/domain"
	portsrepo "github.com/contable-dev/contabilidad_api/internal/core/ports/repositories"
	"github.com/contable-dev/contabilidad_api/internal/dto"
	"github.com/contable-dev/contabilidad_api/internal/models"
	"github.com/contable-dev/contabilidad_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auxiliarySystemColumns = `auxiliary_system_id, sequence_id, description, active, created_at, updated_at`

type PgxAuxiliarySystemRepository struct {
	BaseRepository
}

// newPgxAuxiliarySystemRepository creates a new repository for tenant data.
func newPgxAuxiliarySystemRepository(pool *pgxpool.Pool) portsrepo.AuxiliarySystemRepositoryFacade {
	return &PgxAuxiliarySystemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuxiliarySystemRepositoryFacade = (*PgxAuxiliarySystemRepository)(nil)

func scanAuxiliarySystem(row pgx.Row) (models.AuxiliarySystem, error) {
	var m models.AuxiliarySystem
	err := row.Scan(
		&m.AuxiliarySystemID,
		&m.SequenceID,
		&m.Description,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveAuxiliarySystem inserts a new auxiliary system.
func (r *PgxAuxiliarySystemRepository) SaveAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error {
	m := mapping.ToModelAuxiliarySystem(system)
	query := `
		INSERT INTO auxiliary_systems (auxiliary_system_id, sequence_id, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuxiliarySystemID,
		m.SequenceID,
		m.Description,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: auxiliary system %q", apperrors.ErrDuplicate, system.Description)
		}
		return apperrors.NewAppError(500, "failed to insert auxiliary system "+m.AuxiliarySystemID, err)
	}
	return nil
}

// UpdateAuxiliarySystem persists the mutable fields of an existing auxiliary system.
func (r *PgxAuxiliarySystemRepository) UpdateAuxiliarySystem(ctx context.Context, system domain.AuxiliarySystem) error {
	m := mapping.ToModelAuxiliarySystem(system)
	query := `
		UPDATE auxiliary_systems
		SET description = $2, active = $3, updated_at = $4
		WHERE auxiliary_system_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AuxiliarySystemID,
		m.Description,
		m.Active,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update auxiliary system "+m.AuxiliarySystemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAuxiliarySystemByID retrieves an auxiliary system by its internal id.
func (r *PgxAuxiliarySystemRepository) FindAuxiliarySystemByID(ctx context.Context, auxiliarySystemID string) (*domain.AuxiliarySystem, error) {
	query := `SELECT ` + auxiliarySystemColumns + ` FROM auxiliary_systems WHERE auxiliary_system_id = $1;`
	m, err := scanAuxiliarySystem(r.Pool.QueryRow(ctx, query, auxiliarySystemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find auxiliary system %s: %w", auxiliarySystemID, err)
	}
	d := mapping.ToDomainAuxiliarySystem(m)
	return &d, nil
}

// FindAuxiliarySystemBySequenceID retrieves an auxiliary system by its sequence id.
func (r *PgxAuxiliarySystemRepository) FindAuxiliarySystemBySequenceID(ctx context.Context, sequenceID int64) (*domain.AuxiliarySystem, error) {
	query := `SELECT ` + auxiliarySystemColumns + ` FROM auxiliary_systems WHERE sequence_id = $1;`
	m, err := scanAuxiliarySystem(r.Pool.QueryRow(ctx, query, sequenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find auxiliary system by sequence id %d: %w", sequenceID, err)
	}
	d := mapping.ToDomainAuxiliarySystem(m)
	return &d, nil
}

// ListAuxiliarySystems retrieves auxiliary systems matching the filter, plus
// the total match count before pagination.
func (r *PgxAuxiliarySystemRepository) ListAuxiliarySystems(ctx context.Context, filter dto.AuxiliarySystemFilter) ([]domain.AuxiliarySystem, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}

	if filter.SequenceID != 0 {
		args = append(args, filter.SequenceID)
		conditions = append(conditions, "sequence_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		conditions = append(conditions, "description ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, "active = $"+strconv.Itoa(len(args)))
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM auxiliary_systems ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count auxiliary systems: %w", err)
	}

	query := `SELECT ` + auxiliarySystemColumns + ` FROM auxiliary_systems ` + whereClause + ` ORDER BY sequence_id`
	if filter.Paginated {
		args = append(args, filter.PageSize)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset())
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query auxiliary systems: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuxiliarySystem, error) {
		return scanAuxiliarySystem(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan auxiliary systems: %w", err)
	}

	return mapping.ToDomainAuxiliarySystemSlice(ms), total, nil
}
