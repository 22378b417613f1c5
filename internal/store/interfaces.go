// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the optional local snapshot cache of the notes
// view.
//
// The last fetched note list of every session owner is kept in the
// note_snapshots table so a view can render before the first fetch returns.
// The database is picked by DSN scheme: PostgreSQL (pgx) when the web front
// runs as several replicas, a SQLite file otherwise. Queries are built with
// squirrel and the schema is managed by goose migrations.
package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists the last known note list per owner.
type SnapshotRepository interface {
	// SaveSnapshot replaces the stored list of owner with notes, keeping
	// their order.
	SaveSnapshot(ctx context.Context, owner string, notes []models.Note) error

	// LoadSnapshot returns the stored list of owner in saved order. An owner
	// without a snapshot yields an empty slice.
	LoadSnapshot(ctx context.Context, owner string) ([]models.Note, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
