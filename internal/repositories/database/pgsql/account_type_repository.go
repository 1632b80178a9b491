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

const accountTypeColumns = `account_type_id, sequence_id, description, origin, active, created_at, updated_at`

type PgxAccountTypeRepository struct {
	BaseRepository
}

// newPgxAccountTypeRepository creates a new repository for account type data.
func newPgxAccountTypeRepository(pool *pgxpool.Pool) portsrepo.AccountTypeRepositoryFacade {
	return &PgxAccountTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountTypeRepositoryFacade = (*PgxAccountTypeRepository)(nil)

func scanAccountType(row pgx.Row) (models.AccountType, error) {
	var m models.AccountType
	err := row.Scan(
		&m.AccountTypeID,
		&m.SequenceID,
		&m.Description,
		&m.Origin,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveAccountType inserts a new account type.
func (r *PgxAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) error {
	m := mapping.ToModelAccountType(accountType)
	query := `
		INSERT INTO account_types (account_type_id, sequence_id, description, origin, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountTypeID,
		m.SequenceID,
		m.Description,
		m.Origin,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: account type %q", apperrors.ErrDuplicate, accountType.Description)
		}
		return apperrors.NewAppError(500, "failed to insert account type "+m.AccountTypeID, err)
	}
	return nil
}

// UpdateAccountType persists the mutable fields of an existing account type.
func (r *PgxAccountTypeRepository) UpdateAccountType(ctx context.Context, accountType domain.AccountType) error {
	m := mapping.ToModelAccountType(accountType)
	query := `
		UPDATE account_types
		SET description = $2, origin = $3, active = $4, updated_at = $5
		WHERE account_type_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountTypeID,
		m.Description,
		m.Origin,
		m.Active,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account type "+m.AccountTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountTypeByID retrieves an account type by its internal id.
func (r *PgxAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	query := `SELECT ` + accountTypeColumns + ` FROM account_types WHERE account_type_id = $1;`
	m, err := scanAccountType(r.Pool.QueryRow(ctx, query, accountTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type %s: %w", accountTypeID, err)
	}
	d := mapping.ToDomainAccountType(m)
	return &d, nil
}

// FindAccountTypeBySequenceID retrieves an account type by its sequence id.
func (r *PgxAccountTypeRepository) FindAccountTypeBySequenceID(ctx context.Context, sequenceID int64) (*domain.AccountType, error) {
	query := `SELECT ` + accountTypeColumns + ` FROM account_types WHERE sequence_id = $1;`
	m, err := scanAccountType(r.Pool.QueryRow(ctx, query, sequenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type by sequence id %d: %w", sequenceID, err)
	}
	d := mapping.ToDomainAccountType(m)
	return &d, nil
}

// ListAccountTypes retrieves account types matching the filter, plus the
// total match count before pagination.
func (r *PgxAccountTypeRepository) ListAccountTypes(ctx context.Context, filter dto.AccountTypeFilter) ([]domain.AccountType, int64, error) {
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
	if filter.Origin != "" {
		args = append(args, filter.Origin)
		conditions = append(conditions, "origin = $"+strconv.Itoa(len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, "active = $"+strconv.Itoa(len(args)))
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM account_types ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count account types: %w", err)
	}

	query := `SELECT ` + accountTypeColumns + ` FROM account_types ` + whereClause + ` ORDER BY sequence_id`
	if filter.Paginated {
		args = append(args, filter.PageSize)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset())
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AccountType, error) {
		return scanAccountType(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan account types: %w", err)
	}

	return mapping.ToDomainAccountTypeSlice(ms), total, nil
}
