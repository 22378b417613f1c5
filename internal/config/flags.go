// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-api GraphQL endpoint URL
//	-api-key GraphQL API key
//	-storage object-storage gateway URL
//	-storage-level storage access level (public, protected, private)
//	-request-timeout request timeout (e.g. "15s")
//	-url-expiry signed image URL lifetime (e.g. "15m")
//	-token session token
//	-hash-key upload integrity hash key
//	-d snapshot cache DSN
//	-a web front address in format [host]:[port]
//	-session-ttl idle browser session lifetime
//	-max-sessions maximum number of browser sessions
//	-uploads-per-minute image uploads per browser session per minute
//	-max-upload-size largest accepted image in bytes
//	-refresh-interval background note list refresh interval
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-notes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress    NetAddress
		apiAddress       string
		apiKey           string
		storageAddress   string
		storageLevel     string
		requestTimeout   time.Duration
		urlExpiry        time.Duration
		token            string
		hashKey          string
		dsn              string
		sessionTTL       time.Duration
		maxSessions      int
		uploadsPerMinute int
		maxUploadSize    int64
		refreshInterval  time.Duration
		jsonConfigPath   string
	)

	fs.Var(&serverAddress, "a", "Web front address host:port")
	fs.StringVar(&apiAddress, "api", "", "GraphQL endpoint URL")
	fs.StringVar(&apiKey, "api-key", "", "GraphQL API key")
	fs.StringVar(&storageAddress, "storage", "", "Object-storage gateway URL")
	fs.StringVar(&storageLevel, "storage-level", "", "Storage access level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&urlExpiry, "url-expiry", 0, "Signed image URL lifetime (e.g., 15m)")
	fs.StringVar(&token, "token", "", "Session token")
	fs.StringVar(&hashKey, "hash-key", "", "Upload integrity hash key")
	fs.StringVar(&dsn, "d", "", "Snapshot cache DSN")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle browser session lifetime")
	fs.IntVar(&maxSessions, "max-sessions", 0, "Maximum number of browser sessions")
	fs.IntVar(&uploadsPerMinute, "uploads-per-minute", 0, "Image uploads per session per minute")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Largest accepted image in bytes")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Token:   token,
			HashKey: hashKey,
		},
		Adapter: Adapter{
			APIAddress:     apiAddress,
			APIKey:         apiKey,
			StorageAddress: storageAddress,
			StorageLevel:   storageLevel,
			RequestTimeout: requestTimeout,
			URLExpiry:      urlExpiry,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			SessionTTL:       sessionTTL,
			MaxSessions:      maxSessions,
			UploadsPerMinute: uploadsPerMinute,
			MaxUploadSize:    maxUploadSize,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port, checks IP correctness unless host is "localhost" or
// empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
