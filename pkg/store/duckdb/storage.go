package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const EntriesTableSchema = `
	CREATE TABLE IF NOT EXISTS journal_entries (
		id VARCHAR NOT NULL,
		journal VARCHAR NOT NULL,
		entry_date TIMESTAMP NOT NULL,
		content VARCHAR,
		primary_mood VARCHAR NOT NULL,
		secondary_moods JSON,
		tags VARCHAR,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (journal, id)
	);
`

var bootQueries = []string{
	EntriesTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
