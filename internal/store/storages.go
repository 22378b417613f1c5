// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// Storages groups the repositories of the local cache. Snapshots is nil when
// no DSN is configured.
type Storages struct {
	Snapshots SnapshotRepository

	db *DB
}

// NewStorages opens the snapshot cache described by cfg. An empty DSN
// disables the cache and returns empty Storages.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("snapshot cache disabled")
		return &Storages{}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Snapshots: NewSnapshotRepository(db, log),
		db:        db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
