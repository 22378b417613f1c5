// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultRequestTimeout   = 15 * time.Second
	defaultURLExpiry        = 15 * time.Minute
	defaultStorageLevel     = "public"
	defaultSessionTTL       = 30 * time.Minute
	defaultMaxSessions      = 1000
	defaultUploadsPerMinute = 30
	defaultMaxUploadSize    = 10 << 20
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			StorageLevel:   defaultStorageLevel,
			RequestTimeout: defaultRequestTimeout,
			URLExpiry:      defaultURLExpiry,
		},
		Server: Server{
			SessionTTL:       defaultSessionTTL,
			MaxSessions:      defaultMaxSessions,
			UploadsPerMinute: defaultUploadsPerMinute,
			MaxUploadSize:    defaultMaxUploadSize,
		},
	}
}
