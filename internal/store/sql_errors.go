package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells the bundle repository whether a failed statement
// is worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is returned for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks lost connections, rolled back transactions and lock
	// contention.
	Retryable
)

// PostgresErrorClassifier classifies pgx errors by their SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return classifySQLState(pgErr.Code)
}

// classifySQLState retries classes 08 (connection), 40 (transaction rollback)
// and the 57P0x operator intervention codes that show up while the server
// restarts. Shutdown codes (57P01, 57P02) drop the session, so the retry runs
// on a fresh pooled connection.
func classifySQLState(code string) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}

// SQLiteErrorClassifier only retries lock contention on the database file.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	if sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked {
		return Retryable
	}
	return NonRetryable
}
