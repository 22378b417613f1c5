// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/gabriel-vasile/mimetype"
)

// hashHeader carries the HMAC-SHA256 of an uploaded object.
const hashHeader = "HashSHA256"

type httpObjectStorage struct {
	client  *utils.HTTPClient
	hasher  *utils.Hasher
	apiKey  string
	level   string
	expiry  time.Duration
	session SessionProvider

	logger *logger.Logger
}

// NewHTTPObjectStorage constructs the HTTP implementation of [ObjectStorage]
// for the gateway at adapterCfg.StorageAddress. Objects are stored under
// adapterCfg.StorageLevel. When hashKey is non-empty every upload is signed
// with an HMAC-SHA256 header.
func NewHTTPObjectStorage(adapterCfg config.Adapter, hashKey string, session SessionProvider, logger *logger.Logger) (ObjectStorage, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.StorageAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter storage address: %w", err)
	}

	s := &httpObjectStorage{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		apiKey:  adapterCfg.APIKey,
		level:   adapterCfg.StorageLevel,
		expiry:  adapterCfg.URLExpiry,
		session: session,
		logger:  logger,
	}
	if hashKey != "" {
		s.hasher = utils.NewHasher(hashKey)
	}

	return s, nil
}

// Put implements [ObjectStorage]. It PUTs data to /{level}/{key} with a
// Content-Type detected from the bytes.
func (s *httpObjectStorage) Put(ctx context.Context, key string, data []byte) error {
	req, err := authedRequest(ctx, s.client.Client, s.session, s.apiKey)
	if err != nil {
		return err
	}

	contentType := mimetype.Detect(data).String()
	req.SetHeader("Content-Type", contentType).
		SetPathParams(map[string]string{"level": s.level, "key": key}).
		SetBody(data)
	if s.hasher != nil {
		req.SetHeader(hashHeader, s.hasher.HashHex(data))
	}

	resp, err := req.Put("/{level}/{key}")
	if err != nil {
		return fmt.Errorf("put object request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("put object: %w", err)
	}

	s.logger.Debug().
		Str("key", key).
		Str("content_type", contentType).
		Int("size", len(data)).
		Msg("object uploaded")

	return nil
}

// Get implements [ObjectStorage]. It POSTs the key to /url and returns the
// signed URL the gateway issues for it.
func (s *httpObjectStorage) Get(ctx context.Context, key string) (string, error) {
	req, err := authedRequest(ctx, s.client.Client, s.session, s.apiKey)
	if err != nil {
		return "", err
	}

	var signed models.SignedURLResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignedURLRequest{
			Key:     key,
			Level:   s.level,
			Expires: int64(s.expiry / time.Second),
		}).
		SetResult(&signed).
		Post("/url")
	if err != nil {
		return "", fmt.Errorf("signed url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("signed url: %w", err)
	}
	if signed.URL == "" {
		return "", ErrEmptySignedURL
	}

	return signed.URL, nil
}
