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

const currencyColumns = `currency_id, sequence_id, iso_code, description, last_exchange_rate, active, created_at, updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyID,
		&m.SequenceID,
		&m.ISOCode,
		&m.Description,
		&m.LastExchangeRate,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (currency_id, sequence_id, iso_code, description, last_exchange_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyID,
		m.SequenceID,
		m.ISOCode,
		m.Description,
		m.LastExchangeRate,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.ISOCode)
		}
		return apperrors.NewAppError(500, "failed to insert currency "+m.CurrencyID, err)
	}
	return nil
}

// UpdateCurrency persists the mutable fields of an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies
		SET iso_code = $2, description = $3, last_exchange_rate = $4, active = $5, updated_at = $6
		WHERE currency_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CurrencyID,
		m.ISOCode,
		m.Description,
		m.LastExchangeRate,
		m.Active,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.ISOCode)
		}
		return apperrors.NewAppError(500, "failed to update currency "+m.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its internal id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyID, err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// FindCurrencyBySequenceID retrieves a currency by its sequence id.
func (r *PgxCurrencyRepository) FindCurrencyBySequenceID(ctx context.Context, sequenceID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE sequence_id = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, sequenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by sequence id %d: %w", sequenceID, err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// FindCurrencyByISOCode retrieves a currency by its 3-letter ISO code.
func (r *PgxCurrencyRepository) FindCurrencyByISOCode(ctx context.Context, isoCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE iso_code = $1;`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, isoCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by iso code %s: %w", isoCode, err)
	}
	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves currencies matching the filter, plus the total
// match count before pagination.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, filter dto.CurrencyFilter) ([]domain.Currency, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}

	if filter.SequenceID != 0 {
		args = append(args, filter.SequenceID)
		conditions = append(conditions, "sequence_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ISOCode != "" {
		args = append(args, filter.ISOCode)
		conditions = append(conditions, "iso_code = $"+strconv.Itoa(len(args)))
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
	countQuery := `SELECT COUNT(*) FROM currencies ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count currencies: %w", err)
	}

	query := `SELECT ` + currencyColumns + ` FROM currencies ` + whereClause + ` ORDER BY sequence_id`
	if filter.Paginated {
		args = append(args, filter.PageSize)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset())
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(ms), total, nil
}
