// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var allowedStorageLevels = []string{"public", "protected", "private"}

// validate checks settings shared by every binary. Binary-specific
// requirements are checked by the config views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" ||
		cfg.Server.SessionTTL <= 0 ||
		cfg.Server.MaxSessions <= 0 ||
		cfg.Server.UploadsPerMinute <= 0 ||
		cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (a Adapter) validate() error {
	if a.APIAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if a.StorageAddress != "" {
		if !slices.Contains(allowedStorageLevels, a.StorageLevel) || a.URLExpiry <= 0 {
			return ErrInvalidAdapterConfigs
		}
	}

	return nil
}
