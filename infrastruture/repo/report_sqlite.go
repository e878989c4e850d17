package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"

	_ "modernc.org/sqlite" // SQLite driver.
)

// SQLiteReportRepo stores execution reports in a local SQLite database.
type SQLiteReportRepo struct {
	db *sql.DB
}

// OpenSQLiteReportRepo opens or creates the database at path and applies migrations.
func OpenSQLiteReportRepo(path string) (*SQLiteReportRepo, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	repo := &SQLiteReportRepo{db: db}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// Close closes the underlying database.
func (r *SQLiteReportRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteReportRepo) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS executions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		commands INTEGER NOT NULL,
		result INTEGER NOT NULL,
		duration REAL NOT NULL
	);`)
	return err
}

// Save inserts the report and returns its row id.
func (r *SQLiteReportRepo) Save(ctx context.Context, report *domain.Report) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO executions (timestamp, commands, result, duration) VALUES (?, ?, ?, ?)`,
		report.Timestamp.UTC().Format(time.RFC3339Nano),
		report.Commands,
		report.Result,
		report.Duration,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	report.ID = int(id)
	return report.ID, nil
}

// ByID retrieves a report by its row id.
// Returns (nil, nil) if the row does not exist.
func (r *SQLiteReportRepo) ByID(ctx context.Context, id int) (*domain.Report, error) {
	var (
		report    domain.Report
		timestamp string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, timestamp, commands, result, duration FROM executions WHERE id = ?`, id,
	).Scan(&report.ID, &timestamp, &report.Commands, &report.Result, &report.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report.Timestamp, err = time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp of execution %d: %w", id, err)
	}
	return &report, nil
}
