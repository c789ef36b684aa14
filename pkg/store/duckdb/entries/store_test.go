package entries

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/journal-atlas/pkg/models/store"
	"github.com/de-tools/journal-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupTestDB(t *testing.T) *sql.DB {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	return db
}

func setupFixture(t *testing.T, journal string) *fixture {
	db := setupTestDB(t)
	s, err := NewJournalStore(db, journal)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: s,
	}
}

func sampleRecords() []store.EntryRecord {
	return []store.EntryRecord{
		{
			ID:             "entry1",
			EntryDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Content:        "Went for a long run this morning.",
			PrimaryMood:    "Happy",
			SecondaryMoods: []string{"Calm"},
			Tags:           "Health, Morning",
			CreatedAt:      time.Date(2024, 1, 1, 21, 15, 0, 0, time.UTC),
		},
		{
			ID:          "entry2",
			EntryDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Content:     "Rough day at the office.",
			PrimaryMood: "Stressed",
			Tags:        "Work",
			CreatedAt:   time.Date(2024, 1, 2, 22, 0, 0, 0, time.UTC),
		},
	}
}

func TestEntryStore_Add(t *testing.T) {
	f := setupFixture(t, "personal")
	ctx := context.Background()

	t.Run("success - add records", func(t *testing.T) {
		err := f.store.Add(ctx, "personal", sampleRecords())
		require.NoError(t, err)

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM journal_entries WHERE journal = ?", "personal").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("success - empty records", func(t *testing.T) {
		err := f.store.Add(ctx, "personal", nil)
		require.NoError(t, err)
	})

	t.Run("rolled back transaction leaves no rows", func(t *testing.T) {
		tx, err := f.db.Begin()
		require.NoError(t, err)

		txCtx := duckdb.WithTransaction(ctx, tx)
		err = f.store.Add(txCtx, "personal", []store.EntryRecord{{
			ID:          "tx-entry",
			EntryDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			PrimaryMood: "Calm",
			CreatedAt:   time.Now(),
		}})
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		var count int
		err = f.db.QueryRow("SELECT COUNT(*) FROM journal_entries WHERE id = ?", "tx-entry").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("error - duplicate id", func(t *testing.T) {
		records := []store.EntryRecord{{
			ID:          "dup",
			EntryDate:   time.Now(),
			PrimaryMood: "Calm",
			CreatedAt:   time.Now(),
		}}

		err := f.store.Add(ctx, "personal", records)
		require.NoError(t, err)

		err = f.store.Add(ctx, "personal", records)
		assert.Error(t, err)
	})
}

func TestEntryStore_GetEntries(t *testing.T) {
	f := setupFixture(t, "personal")
	ctx := context.Background()

	require.NoError(t, f.store.Add(ctx, "personal", sampleRecords()))
	// another journal's entries must not leak into reads
	require.NoError(t, f.store.Add(ctx, "work", []store.EntryRecord{{
		ID:          "other1",
		EntryDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PrimaryMood: "Bored",
		CreatedAt:   time.Now(),
	}}))

	t.Run("window bounds are start-inclusive, end-exclusive", func(t *testing.T) {
		records, err := f.store.GetEntries(ctx,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "entry1", records[0].ID)
		assert.Equal(t, []string{"Calm"}, records[0].SecondaryMoods)
		assert.Equal(t, "Health, Morning", records[0].Tags)
	})

	t.Run("full range returns only this journal", func(t *testing.T) {
		records, err := f.store.GetAllEntries(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "entry1", records[0].ID)
		assert.Equal(t, "entry2", records[1].ID)
	})
}

func TestEntryStore_GetStats(t *testing.T) {
	f := setupFixture(t, "personal")
	ctx := context.Background()

	t.Run("empty journal", func(t *testing.T) {
		stats, err := f.store.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.EntriesCount)
		assert.Nil(t, stats.FirstEntryDate)
	})

	t.Run("with entries", func(t *testing.T) {
		require.NoError(t, f.store.Add(ctx, "personal", sampleRecords()))

		stats, err := f.store.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.EntriesCount)
		require.NotNil(t, stats.FirstEntryDate)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), stats.FirstEntryDate.UTC())
	})
}

func TestEntryStore_ReadRequiresJournal(t *testing.T) {
	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	s, err := NewStore(db)
	require.NoError(t, err)

	_, err = s.GetAllEntries(context.Background())
	assert.Error(t, err)
	_, err = s.GetStats(context.Background())
	assert.Error(t, err)
}

func TestEntryStore_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := NewJournalStore(db, "personal")
	require.NoError(t, err)

	t.Run("query failure surfaces", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, entry_date").WillReturnError(sql.ErrConnDone)

		_, err := s.GetAllEntries(context.Background())
		assert.Error(t, err)
	})

	t.Run("malformed secondary moods", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "entry_date", "content", "primary_mood", "secondary_moods", "tags", "created_at",
		}).AddRow("entry1", time.Now(), "content", "Happy", []byte("{not json"), "Work", time.Now())
		mock.ExpectQuery("SELECT id, entry_date").WillReturnRows(rows)

		_, err := s.GetAllEntries(context.Background())
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
