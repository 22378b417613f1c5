// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Token   string `json:"token"`
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		APIAddress     string   `json:"api_address"`
		APIKey         string   `json:"api_key"`
		StorageAddress string   `json:"storage_address"`
		StorageLevel   string   `json:"storage_level"`
		RequestTimeout Duration `json:"request_timeout"`
		URLExpiry      Duration `json:"url_expiry"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		SessionTTL       Duration `json:"session_ttl"`
		MaxSessions      int      `json:"max_sessions"`
		UploadsPerMinute int      `json:"uploads_per_minute"`
		MaxUploadSize    int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:   jsonCfg.App.Token,
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			APIAddress:     jsonCfg.Adapter.APIAddress,
			APIKey:         jsonCfg.Adapter.APIKey,
			StorageAddress: jsonCfg.Adapter.StorageAddress,
			StorageLevel:   jsonCfg.Adapter.StorageLevel,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			URLExpiry:      time.Duration(jsonCfg.Adapter.URLExpiry),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			SessionTTL:       time.Duration(jsonCfg.Server.SessionTTL),
			MaxSessions:      jsonCfg.Server.MaxSessions,
			UploadsPerMinute: jsonCfg.Server.UploadsPerMinute,
			MaxUploadSize:    jsonCfg.Server.MaxUploadSize,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
