// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	trimSnapshotSQL   = `DELETE FROM note_snapshots WHERE owner = $1 AND position >= $2`
	selectSnapshotSQL = `SELECT note_id, name, description, image, image_url, created_at, updated_at FROM note_snapshots WHERE owner = $1 ORDER BY position`
	upsertSnapshotSQL = `INSERT INTO note_snapshots`
)

var snapshotRowColumns = []string{"note_id", "name", "description", "image", "image_url", "created_at", "updated_at"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) *snapshotRepository {
	t.Helper()
	repo := NewSnapshotRepository(newDB(db, DialectPostgres, logger.Nop()), logger.Nop()).(*snapshotRepository)
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return repo
}

func testNotes() []models.Note {
	return []models.Note{
		{ID: "n-1", Name: "first", Description: "one", Image: "cat.png", ImageURL: "https://cdn/cat.png"},
		{ID: "n-2", Name: "second", Description: "two"},
	}
}

func TestSaveSnapshot_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(trimSnapshotSQL)).
		WithArgs("u-1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_EmptyListOnlyDeletes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(trimSnapshotSQL)).
		WithArgs("u-1", 0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.SaveSnapshot(context.Background(), "u-1", nil)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_OverwritesRowsOfConcurrentSave(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	// Another save for the same owner already holds positions 0..2; the
	// upsert updates them and the trim drops position 2.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL) + ".*" +
		regexp.QuoteMeta("ON CONFLICT (owner, position) DO UPDATE SET")).
		WithArgs(
			"u-1", 0, "n-1", "first", "one", "cat.png", "https://cdn/cat.png", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"u-1", 1, "n-2", "second", "two", "", "", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(trimSnapshotSQL)).
		WithArgs("u-1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin().WillReturnError(errors.New("boom"))

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSaveSnapshot_NonRetryableError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).
		WillReturnError(&pgconn.PgError{Code: "42P01"})
	mock.ExpectRollback()

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_RetriesRetryableError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).
		WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(trimSnapshotSQL)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_RetryStopsOnCancelledContext(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).
		WillReturnError(&pgconn.PgError{Code: "40P01"})
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveSnapshot(ctx, "u-1", testNotes())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveSnapshot_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSnapshotSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(trimSnapshotSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := repo.SaveSnapshot(context.Background(), "u-1", testNotes())

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestLoadSnapshot_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(snapshotRowColumns).
		AddRow("n-1", "first", "one", "cat.png", "https://cdn/cat.png", created, created).
		AddRow("n-2", "second", "two", "", "", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
		WithArgs("u-1").
		WillReturnRows(rows)

	notes, err := repo.LoadSnapshot(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n-1", notes[0].ID)
	assert.Equal(t, "https://cdn/cat.png", notes[0].ImageURL)
	assert.Equal(t, created, notes[0].CreatedAt)
	assert.True(t, notes[1].CreatedAt.IsZero())
	assert.False(t, notes[1].HasImage())
}

func TestLoadSnapshot_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
		WillReturnRows(sqlmock.NewRows(snapshotRowColumns))

	notes, err := repo.LoadSnapshot(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestLoadSnapshot_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).WillReturnError(errors.New("gone"))

	_, err := repo.LoadSnapshot(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLoadSnapshot_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows([]string{"note_id"}).AddRow("n-1")
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).WillReturnRows(rows)

	_, err := repo.LoadSnapshot(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestLoadSnapshot_RowsError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows(snapshotRowColumns).
		AddRow("n-1", "first", "one", "", "", nil, nil).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).WillReturnRows(rows)

	_, err := repo.LoadSnapshot(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrScanningRows)
}
