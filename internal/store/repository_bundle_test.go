package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sealed-vitae/internal/config"
	"github.com/MKhiriev/sealed-vitae/internal/logger"
)

const (
	loadBundleSQL   = `SELECT payload FROM payloads ORDER BY position ASC`
	deleteBundleSQL = `DELETE FROM payloads`
	insertBundleSQL = `INSERT INTO payloads (position,payload) VALUES ($1,$2),($3,$4)`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL builds a postgres-flavoured DB around an existing *sql.DB.
func newDBFromSQL(db *sql.DB) *DB {
	return NewDB(db, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop())
}

func newTestBundleStorage(t *testing.T, db *sql.DB) *sqlBundleStorage {
	t.Helper()
	s := NewSQLBundleStorage(newDBFromSQL(db), logger.Nop()).(*sqlBundleStorage)
	s.retryWait = time.Millisecond
	return s
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── LoadBundle ───────────────────────────────────────────────────────────────

func TestSQLBundleStorage_LoadBundle_Success(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).
			AddRow("first").
			AddRow("second"))

	bundle, err := s.LoadBundle(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, bundle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_LoadBundle_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	bundle, err := s.LoadBundle(testContext())
	require.NoError(t, err)
	assert.NotNil(t, bundle)
	assert.Empty(t, bundle)
}

func TestSQLBundleStorage_LoadBundle_RetriesRetryableErrors(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	retryable := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).WillReturnError(retryable)
	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).WillReturnError(retryable)
	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow("p"))

	bundle, err := s.LoadBundle(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"p"}, bundle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_LoadBundle_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	retryable := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	for range maxLoadAttempts {
		mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).WillReturnError(retryable)
	}

	_, err := s.LoadBundle(testContext())
	require.ErrorIs(t, err, ErrExecutingQuery)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.ConnectionFailure, pgErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_LoadBundle_NoRetryOnPermanentError(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	_, err := s.LoadBundle(testContext())
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_LoadBundle_ContextCancelledDuringBackoff(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)
	s.retryWait = time.Hour

	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()

	_, err := s.LoadBundle(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSQLBundleStorage_LoadBundle_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(loadBundleSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).
			AddRow("p").
			RowError(0, errors.New("broken row")))

	_, err := s.LoadBundle(testContext())
	require.ErrorIs(t, err, ErrScanningRows)
}

// ── SaveBundle ───────────────────────────────────────────────────────────────

func TestSQLBundleStorage_SaveBundle_Success(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteBundleSQL)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta(insertBundleSQL)).
		WithArgs(0, "a", 1, "b").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, s.SaveBundle(testContext(), []string{"a", "b"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_SaveBundle_EmptyOnlyDeletes(t *testing.T) {
	db, mock := newTestDB(t)
	s := newTestBundleStorage(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteBundleSQL)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, s.SaveBundle(testContext(), nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBundleStorage_SaveBundle_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "begin",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(boom)
			},
			wantErr: ErrBeginningTransaction,
		},
		{
			name: "delete",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteBundleSQL)).WillReturnError(boom)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "insert",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteBundleSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(insertBundleSQL)).WillReturnError(boom)
				mock.ExpectRollback()
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(deleteBundleSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(insertBundleSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit().WillReturnError(boom)
			},
			wantErr: ErrCommitingTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			s := newTestBundleStorage(t, db)
			tt.setup(mock)

			err := s.SaveBundle(testContext(), []string{"a", "b"})
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, boom)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
