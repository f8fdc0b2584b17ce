package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
	"github.com/MKhiriev/sealed-vitae/migrations"
)

// DB wraps a database/sql pool together with the driver-specific pieces the
// repositories need: placeholder format and error classification.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// pool describes how one driver's connection pool is opened.
type pool struct {
	maxOpen    int
	maxIdle    int
	classifier ErrorClassificator
	// prepare runs before sql.Open.
	prepare func(dsn string) error
}

var pools = map[string]pool{
	config.DriverPostgres: {
		maxOpen:    10,
		maxIdle:    4,
		classifier: NewPostgresErrorClassifier(),
	},
	// sqlite serializes writers anyway
	config.DriverSQLite: {
		maxOpen:    1,
		maxIdle:    1,
		classifier: NewSQLiteErrorClassifier(),
		prepare:    createSQLiteFile,
	},
}

// NewConnect opens and pings the database named by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	p, ok := pools[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	log = log.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("driver", cfg.Driver)
	})

	if p.prepare != nil {
		if err := p.prepare(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error preparing database")
			return nil, fmt.Errorf("error preparing database: %w", err)
		}
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error opening database")
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	conn.SetMaxOpenConns(p.maxOpen)
	conn.SetMaxIdleConns(p.maxIdle)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").Msg("connected to database")

	return NewDB(conn, cfg.Driver, p.classifier, log), nil
}

// NewDB wraps an already opened pool. NewConnect is the usual entry point;
// NewDB lets callers bring their own *sql.DB and classifier.
func NewDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		errorClassificator: classifier,
		logger:             log,
	}
}

// createSQLiteFile creates an empty database file for plain paths. URIs and
// in-memory databases are left to the driver.
func createSQLiteFile(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") {
		return nil
	}

	f, err := os.OpenFile(dsn, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.driver)
	if err != nil {
		return err
	}
	if len(applied) > 0 {
		db.logger.Info().Str("func", "DB.Migrate").Ints64("versions", applied).Msg("schema migrated")
	}
	return nil
}

// builder returns a squirrel statement builder with the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
