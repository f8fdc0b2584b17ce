package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrUnknownDriver is returned for a database/sql driver with no goose dialect.
var ErrUnknownDriver = errors.New("migration error: no dialect for driver")

var dialects = map[string]goose.Dialect{
	"pgx":     goose.DialectPostgres,
	"sqlite3": goose.DialectSQLite3,
}

// Migrate brings the schema up to date and returns the versions it applied.
// driver is the database/sql driver name the pool was opened with.
func Migrate(ctx context.Context, db *sql.DB, driver string) ([]int64, error) {
	if db == nil {
		return nil, errors.New("migration error: db is nil")
	}

	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, driver)
	}

	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}
