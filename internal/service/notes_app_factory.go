// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

type notesAppFactory struct {
	appCfg     config.App
	adapterCfg config.Adapter
	snapshots  store.SnapshotRepository

	logger *logger.Logger
}

// NewNotesAppFactory returns a [NotesAppFactory] wiring every view to the
// backend described by adapterCfg with the token from appCfg. snapshots may
// be nil.
func NewNotesAppFactory(appCfg config.App, adapterCfg config.Adapter, snapshots store.SnapshotRepository, logger *logger.Logger) NotesAppFactory {
	return &notesAppFactory{
		appCfg:     appCfg,
		adapterCfg: adapterCfg,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// NewNotesApp implements [NotesAppFactory].
func (f *notesAppFactory) NewNotesApp() (NotesApp, error) {
	session, err := adapter.NewSession(f.appCfg.Token)
	if err != nil {
		return nil, fmt.Errorf("new notes app: %w", err)
	}

	log := &logger.Logger{Logger: f.logger.With().Str("owner", session.Session().Owner()).Logger()}

	api, err := adapter.NewGraphQLNotesAPI(f.adapterCfg, session, log)
	if err != nil {
		return nil, fmt.Errorf("new notes app: %w", err)
	}

	var storage adapter.ObjectStorage
	if f.adapterCfg.StorageAddress != "" {
		storage, err = adapter.NewHTTPObjectStorage(f.adapterCfg, f.appCfg.HashKey, session, log)
		if err != nil {
			return nil, fmt.Errorf("new notes app: %w", err)
		}
	}

	return NewNotesApp(api, storage, session, f.snapshots, log), nil
}
