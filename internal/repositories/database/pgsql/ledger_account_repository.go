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

const ledgerAccountColumns = `ledger_account_id, sequence_id, description, account_type_id, allows_transactions, level, parent_account_id, balance, active, created_at, updated_at`

type PgxLedgerAccountRepository struct {
	BaseRepository
}

// newPgxLedgerAccountRepository creates a new repository for chart-of-accounts data.
func newPgxLedgerAccountRepository(pool *pgxpool.Pool) portsrepo.LedgerAccountRepositoryFacade {
	return &PgxLedgerAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*PgxLedgerAccountRepository)(nil)

func scanLedgerAccount(row pgx.Row) (models.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.LedgerAccountID,
		&m.SequenceID,
		&m.Description,
		&m.AccountTypeID,
		&m.AllowsTransactions,
		&m.Level,
		&m.ParentAccountID,
		&m.Balance,
		&m.Active,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveLedgerAccount inserts a new ledger account.
func (r *PgxLedgerAccountRepository) SaveLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		INSERT INTO ledger_accounts (ledger_account_id, sequence_id, description, account_type_id, allows_transactions, level, parent_account_id, balance, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LedgerAccountID,
		m.SequenceID,
		m.Description,
		m.AccountTypeID,
		m.AllowsTransactions,
		m.Level,
		m.ParentAccountID,
		m.Balance,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: ledger account %q", apperrors.ErrDuplicate, account.Description)
		}
		return apperrors.NewAppError(500, "failed to insert ledger account "+m.LedgerAccountID, err)
	}
	return nil
}

// UpdateLedgerAccount persists the mutable fields of an existing ledger account.
func (r *PgxLedgerAccountRepository) UpdateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		UPDATE ledger_accounts
		SET description = $2, account_type_id = $3, allows_transactions = $4, level = $5, parent_account_id = $6, balance = $7, active = $8, updated_at = $9
		WHERE ledger_account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.LedgerAccountID,
		m.Description,
		m.AccountTypeID,
		m.AllowsTransactions,
		m.Level,
		m.ParentAccountID,
		m.Balance,
		m.Active,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ledger account "+m.LedgerAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLedgerAccountByID retrieves a ledger account by its internal id.
func (r *PgxLedgerAccountRepository) FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE ledger_account_id = $1;`
	m, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, ledgerAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account %s: %w", ledgerAccountID, err)
	}
	d := mapping.ToDomainLedgerAccount(m)
	return &d, nil
}

// FindLedgerAccountBySequenceID retrieves a ledger account by its sequence id.
func (r *PgxLedgerAccountRepository) FindLedgerAccountBySequenceID(ctx context.Context, sequenceID int64) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE sequence_id = $1;`
	m, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, sequenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account by sequence id %d: %w", sequenceID, err)
	}
	d := mapping.ToDomainLedgerAccount(m)
	return &d, nil
}

// FindLedgerAccountsBySequenceIDs retrieves the accounts for the given
// sequence ids, keyed by sequence id. Missing ids are absent from the map.
func (r *PgxLedgerAccountRepository) FindLedgerAccountsBySequenceIDs(ctx context.Context, sequenceIDs []int64) (map[int64]domain.LedgerAccount, error) {
	if len(sequenceIDs) == 0 {
		return map[int64]domain.LedgerAccount{}, nil
	}

	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE sequence_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, sequenceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts by sequence ids: %w", err)
	}
	defer rows.Close()

	accounts := make(map[int64]domain.LedgerAccount, len(sequenceIDs))
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger account: %w", err)
		}
		accounts[m.SequenceID] = mapping.ToDomainLedgerAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger accounts: %w", err)
	}

	return accounts, nil
}

// ListLedgerAccounts retrieves ledger accounts matching the filter, plus the
// total match count before pagination.
func (r *PgxLedgerAccountRepository) ListLedgerAccounts(ctx context.Context, filter dto.LedgerAccountFilter) ([]domain.LedgerAccount, int64, error) {
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
	if filter.Level != nil {
		args = append(args, *filter.Level)
		conditions = append(conditions, "level = $"+strconv.Itoa(len(args)))
	}
	if filter.ParentAccountUUID != "" {
		args = append(args, filter.ParentAccountUUID)
		conditions = append(conditions, "parent_account_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, "active = $"+strconv.Itoa(len(args)))
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM ledger_accounts ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger accounts: %w", err)
	}

	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts ` + whereClause + ` ORDER BY sequence_id`
	if filter.Paginated {
		args = append(args, filter.PageSize)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset())
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ledger accounts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerAccount, error) {
		return scanLedgerAccount(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan ledger accounts: %w", err)
	}

	return mapping.ToDomainLedgerAccountSlice(ms), total, nil
}
