// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/models"
	sq "github.com/Masterminds/squirrel"
)

const snapshotsTable = "note_snapshots"

var snapshotColumns = []string{
	"note_id",
	"name",
	"description",
	"image",
	"image_url",
	"created_at",
	"updated_at",
}

var upsertSnapshotSuffix = "ON CONFLICT (owner, position) DO UPDATE SET " +
	"note_id = EXCLUDED.note_id, " +
	"name = EXCLUDED.name, " +
	"description = EXCLUDED.description, " +
	"image = EXCLUDED.image, " +
	"image_url = EXCLUDED.image_url, " +
	"created_at = EXCLUDED.created_at, " +
	"updated_at = EXCLUDED.updated_at, " +
	"saved_at = EXCLUDED.saved_at"

func buildSelectSnapshotQuery(ph sq.PlaceholderFormat, owner string) (string, []any, error) {
	query, args, err := sq.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"owner": owner}).
		OrderBy("position").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildTrimSnapshotQuery removes the owner's rows at position from and
// beyond, left over from a longer earlier snapshot.
func buildTrimSnapshotQuery(ph sq.PlaceholderFormat, owner string, from int) (string, []any, error) {
	query, args, err := sq.Delete(snapshotsTable).
		Where(sq.Eq{"owner": owner}).
		Where(sq.GtOrEq{"position": from}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSnapshotQuery writes every note in one statement. position
// keeps the list order; a row already held at (owner, position) is
// overwritten.
func buildUpsertSnapshotQuery(ph sq.PlaceholderFormat, owner string, notes []models.Note, savedAt time.Time) (string, []any, error) {
	builder := sq.Insert(snapshotsTable).
		Columns(append([]string{"owner", "position"}, append(snapshotColumns, "saved_at")...)...).
		PlaceholderFormat(ph)

	for i, note := range notes {
		builder = builder.Values(
			owner,
			i,
			note.ID,
			note.Name,
			note.Description,
			note.Image,
			note.ImageURL,
			nullTime(note.CreatedAt),
			nullTime(note.UpdatedAt),
			savedAt,
		)
	}

	query, args, err := builder.Suffix(upsertSnapshotSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
