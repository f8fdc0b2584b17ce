package store

import "errors"

// Sentinel errors returned by storages. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither PostgreSQL (pgx) nor SQLite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrReadingFile is returned when a bundle or public record file exists
	// but cannot be read.
	ErrReadingFile = errors.New("error reading file")

	// ErrWritingFile is returned when a bundle file cannot be written.
	ErrWritingFile = errors.New("error writing file")

	// ErrDecodingBundle is returned when a bundle file is not a JSON array of
	// {"payload": "..."} objects.
	ErrDecodingBundle = errors.New("error decoding bundle")

	// ErrDecodingRecord is returned when the public record file is not a JSON
	// object of the record schema.
	ErrDecodingRecord = errors.New("error decoding public record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning payload rows fails.
	ErrScanningRows = errors.New("failed to scan payload rows")
)
