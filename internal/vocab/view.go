package vocab

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

const createView = `CREATE TABLE records (
    seq INTEGER PRIMARY KEY,
    word TEXT NOT NULL,
    translation TEXT NOT NULL,
    tags TEXT NOT NULL,
    file TEXT NOT NULL
);
CREATE INDEX idx_records_word ON records(word);`

// Queries against the snapshot. seq is the position of a record in the
// concatenation of all tables.
const (
	// A key is reported where it is first met as a duplicate, i.e. at its
	// second occurrence.
	queryDuplicateKeys = `SELECT word FROM (
    SELECT word, seq, ROW_NUMBER() OVER (PARTITION BY word ORDER BY seq) AS n
    FROM records
) WHERE n = 2 ORDER BY seq`

	queryValues = `SELECT translation FROM records WHERE word = ? GROUP BY translation ORDER BY MIN(seq)`
	queryTags   = `SELECT tags FROM records WHERE word = ? ORDER BY seq`
	queryFiles  = `SELECT file FROM records WHERE word = ? GROUP BY file ORDER BY MIN(seq)`
	queryCount  = `SELECT COUNT(*) FROM records`
)

// view is the combined, read-only snapshot of every table's records, held in
// an in-memory SQLite database. It is built once and never refreshed.
type view struct {
	db *sql.DB
}

func newView(ctx context.Context, tables []*RecordTable) (*view, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening view database: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createView); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating view schema: %w", err)
	}

	if err := insertTables(ctx, db, tables); err != nil {
		db.Close()
		return nil, err
	}
	return &view{db: db}, nil
}

func insertTables(ctx context.Context, db *sql.DB, tables []*RecordTable) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning view load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO records (word, translation, tags, file) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing view insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tables {
		for _, rec := range t.records {
			if _, err := stmt.ExecContext(ctx, rec.Key, rec.Value, rec.Tags, rec.File); err != nil {
				return fmt.Errorf("loading %s into view: %w", t.name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing view load: %w", err)
	}
	return nil
}

func (v *view) duplicateKeys(ctx context.Context) ([]string, error) {
	return v.strings(ctx, queryDuplicateKeys)
}

func (v *view) values(ctx context.Context, key string) ([]string, error) {
	return v.strings(ctx, queryValues, key)
}

func (v *view) tags(ctx context.Context, key string) ([]string, error) {
	return v.strings(ctx, queryTags, key)
}

func (v *view) files(ctx context.Context, key string) ([]string, error) {
	return v.strings(ctx, queryFiles, key)
}

func (v *view) count(ctx context.Context) (int, error) {
	if v == nil {
		return 0, types.ErrCatalogClosed
	}
	var n int
	if err := v.db.QueryRowContext(ctx, queryCount).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting view records: %w", err)
	}
	return n, nil
}

// strings runs a single-column query and collects the results. A nil view
// belongs to a closed catalog.
func (v *view) strings(ctx context.Context, query string, args ...any) ([]string, error) {
	if v == nil {
		return nil, types.ErrCatalogClosed
	}
	rows, err := v.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying view: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning view row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating view rows: %w", err)
	}
	return out, nil
}

func (v *view) close() error {
	return v.db.Close()
}
