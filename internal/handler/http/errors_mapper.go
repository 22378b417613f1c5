// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/validators"
)

var errorStatusMap = map[error]int{
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrSessionExpired:      http.StatusUnauthorized,
	adapter.ErrSignedOut:           http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrTooManyRequests:     http.StatusTooManyRequests,
	adapter.ErrGraphQL:             http.StatusBadGateway,
	adapter.ErrEmptySignedURL:      http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrServiceUnavailable:  http.StatusServiceUnavailable,

	service.ErrImagesDisabled: http.StatusNotFound,

	validators.ErrEmptyID:          http.StatusBadRequest,
	validators.ErrEmptyName:        http.StatusBadRequest,
	validators.ErrEmptyDescription: http.StatusBadRequest,
	validators.ErrInvalidImageKey:  http.StatusBadRequest,

	ErrTooManyUploads: http.StatusTooManyRequests,
	ErrUploadTooLarge: http.StatusRequestEntityTooLarge,
	ErrInvalidUpload:  http.StatusBadRequest,
}

// statusFromError maps err to a response status. Adapter errors win over
// the generic ones they may be wrapped with.
func statusFromError(err error) int {
	// ErrUnauthorized travels together with ErrGraphQL
	if errors.Is(err, adapter.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// userMessage is the error line shown on the page for err.
func userMessage(action string, err error) string {
	switch statusFromError(err) {
	case http.StatusUnauthorized:
		return action + ": session expired, sign in again"
	case http.StatusTooManyRequests:
		return action + ": too many requests, try again later"
	case http.StatusRequestEntityTooLarge:
		return action + ": image is too large"
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return action + ": the notes backend is unavailable"
	}

	return action + ": " + err.Error()
}
