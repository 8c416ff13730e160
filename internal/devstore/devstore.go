// Package devstore manages the console's device-local SQLite database:
// the remembered session blob and console preferences.
package devstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evizor/console/internal/devstore/migrations"
	"github.com/pressly/goose/v3"
)

// Open opens (creating if necessary) the device database at dsn and applies
// pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open device store: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate device store: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
