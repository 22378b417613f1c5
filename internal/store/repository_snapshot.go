// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// retryDelays are the pauses before each retry of a failed save.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

type snapshotRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSnapshotRepository constructs a [SnapshotRepository] over db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SaveSnapshot implements [SnapshotRepository]. The notes are upserted by
// position and the tail of any longer previous snapshot is trimmed, in a
// single transaction. Retryable failures are attempted again after each of
// retryDelays.
func (r *snapshotRepository) SaveSnapshot(ctx context.Context, owner string, notes []models.Note) error {
	err := r.saveSnapshot(ctx, owner, notes)
	for _, delay := range retryDelays {
		if err == nil || r.errorClassificator.Classify(err) != Retryable {
			return err
		}

		r.logger.Warn().Err(err).
			Str("owner", owner).
			Dur("retry_in", delay).
			Msg("retryable error saving snapshot")

		select {
		case <-ctx.Done():
			return fmt.Errorf("save snapshot: %w", ctx.Err())
		case <-time.After(delay):
		}

		err = r.saveSnapshot(ctx, owner, notes)
	}

	return err
}

func (r *snapshotRepository) saveSnapshot(ctx context.Context, owner string, notes []models.Note) error {
	trimQuery, trimArgs, err := buildTrimSnapshotQuery(r.placeholder, owner, len(notes))
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if len(notes) > 0 {
		upsertQuery, upsertArgs, buildErr := buildUpsertSnapshotQuery(r.placeholder, owner, notes, r.now().UTC())
		if buildErr != nil {
			return buildErr
		}

		if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err = tx.ExecContext(ctx, trimQuery, trimArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// LoadSnapshot implements [SnapshotRepository].
func (r *snapshotRepository) LoadSnapshot(ctx context.Context, owner string) ([]models.Note, error) {
	query, args, err := buildSelectSnapshotQuery(r.placeholder, owner)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("owner", owner).Msg("failed to load snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var (
			note                 models.Note
			createdAt, updatedAt sql.NullTime
		)

		if err = rows.Scan(
			&note.ID,
			&note.Name,
			&note.Description,
			&note.Image,
			&note.ImageURL,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		note.CreatedAt = createdAt.Time
		note.UpdatedAt = updatedAt.Time
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
