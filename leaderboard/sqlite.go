package leaderboard

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at path and applies
// the schema.
func NewSQLiteRepository(ctx context.Context, dbPath string) (Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		migrationPath := path.Join("migrations", entry.Name())
		migration, err := migrationFS.ReadFile(migrationPath)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to read migration %s: %w", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %w", migrationPath, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveRun(ctx context.Context, run Run) error {
	if err := validate(run); err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO runs (run_id, score, waves, ticks, played_at)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, run.ID.String(), run.Score, run.Waves, run.Ticks, run.PlayedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) TopRuns(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		return nil, nil
	}

	q := `
	SELECT run_id, score, waves, ticks, played_at FROM runs
	ORDER BY score DESC, played_at ASC
	LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var id string
		var playedAt int64
		var run Run
		if err := rows.Scan(&id, &run.Score, &run.Waves, &run.Ticks, &playedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse run id %q: %w", id, err)
		}
		run.PlayedAt = time.UnixMilli(playedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
