// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging environment variables,
// command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the session token and integrity settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses of the backend platform services.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the optional local snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the web front settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Token is the session token (JWT) issued by the identity provider.
	// It is sent with every backend request. Empty means API-key-only access.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// HashKey is the HMAC key used to sign uploaded objects (HashSHA256
	// header). Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by the web front's /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the backend platform endpoints.
type Adapter struct {
	// APIAddress is the GraphQL endpoint URL.
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// APIKey is sent as x-api-key when non-empty.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// StorageAddress is the object-storage gateway URL. Empty disables images.
	// Env: ADAPTER_STORAGE_ADDRESS
	StorageAddress string `env:"STORAGE_ADDRESS"`

	// StorageLevel is the access level prefix of stored objects.
	// Env: ADAPTER_STORAGE_LEVEL
	StorageLevel string `env:"STORAGE_LEVEL"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// URLExpiry is the lifetime requested for signed image URLs.
	// Env: ADAPTER_URL_EXPIRY
	URLExpiry time.Duration `env:"URL_EXPIRY"`
}

// Storage groups the local storage settings.
type Storage struct {
	// DB holds the snapshot cache connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the snapshot cache connection settings.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL, anything else is a SQLite file path. Empty disables
	// the cache.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the web front settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SessionTTL is how long an idle browser session is kept.
	// Env: SERVER_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// MaxSessions caps the number of live browser sessions.
	// Env: SERVER_MAX_SESSIONS
	MaxSessions int `env:"MAX_SESSIONS"`

	// UploadsPerMinute limits image uploads per browser session.
	// Env: SERVER_UPLOADS_PER_MINUTE
	UploadsPerMinute int `env:"UPLOADS_PER_MINUTE"`

	// MaxUploadSize is the largest accepted image in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval re-fetches the note list periodically in the terminal
	// client. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
