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
	"github.com/jackc/pgx/v5/pgxpool"
)

const journalEntryColumns = `journal_entry_id, sequence_id, description, auxiliary_system_id, entry_date, status, created_at, updated_at`

const journalEntryLineColumns = `line_id, journal_entry_id, ledger_account_id, movement_type, amount`

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entry data.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryFacade {
	return &PgxJournalEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalEntryRepositoryFacade = (*PgxJournalEntryRepository)(nil)

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID,
		&m.SequenceID,
		&m.Description,
		&m.AuxiliarySystemID,
		&m.EntryDate,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func scanJournalEntryLine(row pgx.Row) (models.JournalEntryLine, error) {
	var m models.JournalEntryLine
	err := row.Scan(
		&m.LineID,
		&m.JournalEntryID,
		&m.LedgerAccountID,
		&m.MovementType,
		&m.Amount,
	)
	return m, err
}

// SaveJournalEntry inserts the entry header and all of its lines inside one
// database transaction. A partially written entry is never observable.
func (r *PgxJournalEntryRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (journal_entry_id, sequence_id, description, auxiliary_system_id, entry_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.JournalEntryID,
		m.SequenceID,
		m.Description,
		m.AuxiliarySystemID,
		m.EntryDate,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.JournalEntryID, err)
	}

	if err := insertJournalEntryLines(ctx, tx, entry.JournalEntryID, entry.Lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalEntry replaces the header fields and the full line list of an
// existing entry inside one database transaction.
func (r *PgxJournalEntryRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		UPDATE journal_entries
		SET description = $2, auxiliary_system_id = $3, entry_date = $4, status = $5, updated_at = $6
		WHERE journal_entry_id = $1;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		m.JournalEntryID,
		m.Description,
		m.AuxiliarySystemID,
		m.EntryDate,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal entry "+m.JournalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_lines WHERE journal_entry_id = $1;`, m.JournalEntryID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of journal entry "+m.JournalEntryID, err)
	}

	if err := insertJournalEntryLines(ctx, tx, entry.JournalEntryID, entry.Lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertJournalEntryLines(ctx context.Context, tx pgx.Tx, journalEntryID string, lines []domain.JournalEntryLine) error {
	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, journal_entry_id, ledger_account_id, movement_type, amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		ml := mapping.ToModelJournalEntryLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.JournalEntryID,
			ml.LedgerAccountID,
			ml.MovementType,
			ml.Amount,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range lines {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert lines of journal entry "+journalEntryID, err)
		}
	}
	return nil
}

// FindJournalEntryByID retrieves an entry with its lines by internal id.
func (r *PgxJournalEntryRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	return r.findJournalEntry(ctx, query, journalEntryID)
}

// FindJournalEntryBySequenceID retrieves an entry with its lines by sequence id.
func (r *PgxJournalEntryRepository) FindJournalEntryBySequenceID(ctx context.Context, sequenceID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE sequence_id = $1;`
	return r.findJournalEntry(ctx, query, sequenceID)
}

func (r *PgxJournalEntryRepository) findJournalEntry(ctx context.Context, query string, arg any) (*domain.JournalEntry, error) {
	m, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	lines, err := r.loadLines(ctx, []string{entry.JournalEntryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entry.JournalEntryID]
	return &entry, nil
}

// loadLines fetches the lines of the given entries, keyed by entry id.
func (r *PgxJournalEntryRepository) loadLines(ctx context.Context, journalEntryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	if len(journalEntryIDs) == 0 {
		return map[string][]domain.JournalEntryLine{}, nil
	}

	query := `SELECT ` + journalEntryLineColumns + ` FROM journal_entry_lines WHERE journal_entry_id = ANY($1) ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, journalEntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[string][]domain.JournalEntryLine, len(journalEntryIDs))
	for rows.Next() {
		m, err := scanJournalEntryLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line: %w", err)
		}
		lines[m.JournalEntryID] = append(lines[m.JournalEntryID], mapping.ToDomainJournalEntryLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal entry lines: %w", err)
	}

	return lines, nil
}

// ListJournalEntries retrieves entries matching the filter with their lines,
// plus the total match count before pagination.
func (r *PgxJournalEntryRepository) ListJournalEntries(ctx context.Context, filter dto.JournalEntryFilter) ([]domain.JournalEntry, int64, error) {
	conditions := []string{"1=1"}
	args := []any{}

	if filter.SequenceID != 0 {
		args = append(args, filter.SequenceID)
		conditions = append(conditions, "e.sequence_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		conditions = append(conditions, "e.description ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.AuxiliarySystemUUID != "" {
		args = append(args, filter.AuxiliarySystemUUID)
		conditions = append(conditions, "e.auxiliary_system_id = $"+strconv.Itoa(len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, "e.entry_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, "e.entry_date <= $"+strconv.Itoa(len(args)))
	}
	if filter.LedgerAccountUUID != "" || filter.MovementType != "" {
		lineConditions := []string{"l.journal_entry_id = e.journal_entry_id"}
		if filter.LedgerAccountUUID != "" {
			args = append(args, filter.LedgerAccountUUID)
			lineConditions = append(lineConditions, "l.ledger_account_id = $"+strconv.Itoa(len(args)))
		}
		if filter.MovementType != "" {
			args = append(args, filter.MovementType)
			lineConditions = append(lineConditions, "l.movement_type = $"+strconv.Itoa(len(args)))
		}
		conditions = append(conditions, "EXISTS (SELECT 1 FROM journal_entry_lines l WHERE "+strings.Join(lineConditions, " AND ")+")")
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_entries e ` + whereClause + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	query := `SELECT e.journal_entry_id, e.sequence_id, e.description, e.auxiliary_system_id, e.entry_date, e.status, e.created_at, e.updated_at FROM journal_entries e ` + whereClause + ` ORDER BY e.sequence_id`
	if filter.Paginated {
		args = append(args, filter.PageSize)
		query += " LIMIT $" + strconv.Itoa(len(args))
		args = append(args, filter.Offset())
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	query += ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.JournalEntry, error) {
		return scanJournalEntry(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan journal entries: %w", err)
	}

	entries := make([]domain.JournalEntry, len(ms))
	entryIDs := make([]string, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainJournalEntry(m)
		entryIDs[i] = m.JournalEntryID
	}

	lines, err := r.loadLines(ctx, entryIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].JournalEntryID]
	}

	return entries, total, nil
}
