// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

// Services groups the services shared by both front ends.
type Services struct {
	AppInfoService  AppInfoService
	NotesAppFactory NotesAppFactory
}

// NewServices wires the services. storages.Snapshots may be nil.
func NewServices(appCfg config.App, adapterCfg config.Adapter, storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AppInfoService:  NewAppInfoService(appCfg, buildInfo, logger),
		NotesAppFactory: NewNotesAppFactory(appCfg, adapterCfg, storages.Snapshots, logger),
	}
}
