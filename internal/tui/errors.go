// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/service"
)

// humanizeError turns an operation error into the text of the error line.
func humanizeError(action string, err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired), errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Sprintf("%s: session expired, sign in again", action)
	case errors.Is(err, adapter.ErrSignedOut):
		return fmt.Sprintf("%s: signed out", action)
	case errors.Is(err, service.ErrImagesDisabled):
		return fmt.Sprintf("%s: images are disabled", action)
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return fmt.Sprintf("%s: network is down or the backend is unreachable", action)
	}

	return fmt.Sprintf("%s: %v", action, err)
}
