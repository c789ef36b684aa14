package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/journal-atlas/pkg/models/store"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb"
)

// Store supports both ingestion (Add) and read (Get*) operations for journal
// entries in DuckDB. For read operations, bind the store to a specific
// journal via NewJournalStore.
type Store interface {
	Add(ctx context.Context, journal string, records []store.EntryRecord) error
	GetEntries(ctx context.Context, startTime, endTime time.Time) ([]store.EntryRecord, error)
	GetAllEntries(ctx context.Context) ([]store.EntryRecord, error)
	GetStats(ctx context.Context) (*store.EntryStats, error)
}

type entryStore struct {
	db      *sql.DB
	journal string // optional; required for read methods
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &entryStore{db: db}, nil
}

// NewJournalStore returns a Store bound to a specific journal for read operations.
func NewJournalStore(db *sql.DB, journal string) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if journal == "" {
		return nil, fmt.Errorf("journal is required for read store")
	}
	return &entryStore{
		db:      db,
		journal: journal,
	}, nil
}

func (s *entryStore) Add(ctx context.Context, journal string, records []store.EntryRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := duckdb.GetTransaction(ctx)
	query := `
		INSERT INTO journal_entries (
			id, journal, entry_date, content, primary_mood,
			secondary_moods, tags, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?
		)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}

	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		secondaryMoods, err := json.Marshal(record.SecondaryMoods)
		if err != nil {
			return fmt.Errorf("marshal secondary moods: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			record.ID,
			journal,
			record.EntryDate,
			record.Content,
			record.PrimaryMood,
			secondaryMoods,
			record.Tags,
			record.CreatedAt,
		)

		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	return nil
}

func (s *entryStore) ensureJournal() error {
	if s.journal == "" {
		return fmt.Errorf("read operation requires journal-bound store; use NewJournalStore")
	}
	return nil
}

func (s *entryStore) GetEntries(ctx context.Context, startTime, endTime time.Time) ([]store.EntryRecord, error) {
	if err := s.ensureJournal(); err != nil {
		return nil, err
	}
	query := `
		SELECT id, entry_date, content, primary_mood, secondary_moods, tags, created_at
		FROM journal_entries
		WHERE journal = ? AND entry_date >= ? AND entry_date < ?
		ORDER BY entry_date ASC
	`
	rows, err := s.db.QueryContext(ctx, query, s.journal, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()
	return scanEntryRows(rows)
}

func (s *entryStore) GetAllEntries(ctx context.Context) ([]store.EntryRecord, error) {
	if err := s.ensureJournal(); err != nil {
		return nil, err
	}
	query := `
		SELECT id, entry_date, content, primary_mood, secondary_moods, tags, created_at
		FROM journal_entries
		WHERE journal = ?
		ORDER BY entry_date ASC
	`
	rows, err := s.db.QueryContext(ctx, query, s.journal)
	if err != nil {
		return nil, fmt.Errorf("query all entries: %w", err)
	}
	defer rows.Close()
	return scanEntryRows(rows)
}

func (s *entryStore) GetStats(ctx context.Context) (*store.EntryStats, error) {
	if err := s.ensureJournal(); err != nil {
		return nil, err
	}
	query := `SELECT COUNT(*), MIN(entry_date) FROM journal_entries WHERE journal = ?`

	var stats store.EntryStats
	var firstEntry sql.NullTime
	err := s.db.QueryRowContext(ctx, query, s.journal).Scan(&stats.EntriesCount, &firstEntry)
	if err != nil {
		return nil, fmt.Errorf("query entry stats: %w", err)
	}
	if firstEntry.Valid {
		stats.FirstEntryDate = &firstEntry.Time
	}
	return &stats, nil
}

func scanEntryRows(rows *sql.Rows) ([]store.EntryRecord, error) {
	var records []store.EntryRecord
	for rows.Next() {
		var record store.EntryRecord
		var secondaryMoods []byte
		var content, tags sql.NullString

		err := rows.Scan(
			&record.ID,
			&record.EntryDate,
			&content,
			&record.PrimaryMood,
			&secondaryMoods,
			&tags,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}

		record.Content = content.String
		record.Tags = tags.String
		if len(secondaryMoods) > 0 {
			if err := json.Unmarshal(secondaryMoods, &record.SecondaryMoods); err != nil {
				return nil, fmt.Errorf("unmarshal secondary moods: %w", err)
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry rows: %w", err)
	}
	return records, nil
}
