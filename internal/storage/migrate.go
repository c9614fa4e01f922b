package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"net/url"

	"github.com/pressly/goose/v3"

	"github.com/Ragavendra192/barani-report-system/internal/logger"
)

// migrations holds the SQLite development schema for the log table.
//
//go:embed migrations/*.sql
var migrations embed.FS

// gooseLogger routes goose output through the application logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logger.Debug(fmt.Sprintf(format, v...))
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Error(fmt.Sprintf(format, v...))
}

// CreateDevDatabase creates (or upgrades) a writable SQLite database at path
// with the log table schema. It is used by the seed command and by tests;
// report requests open the database read-only.
func CreateDevDatabase(ctx context.Context, path string) (*sql.DB, error) {
	params := url.Values{}
	params.Set("_busy_timeout", "5000")

	db, err := sql.Open("sqlite3", sqliteURI(path, params))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
