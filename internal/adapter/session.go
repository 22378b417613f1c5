// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

// Session holds the session token shared by the backend clients. It is safe
// for concurrent use.
type Session struct {
	mu        sync.RWMutex
	token     string
	claims    models.Session
	signedOut bool

	now func() time.Time
}

// NewSession parses token and returns a session holding it. An empty token
// yields an anonymous session that relies on the API key alone.
func NewSession(token string) (*Session, error) {
	s := &Session{now: time.Now}

	token = strings.TrimSpace(token)
	if token == "" {
		return s, nil
	}

	claims, err := utils.ParseSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	s.token = token
	s.claims = claims
	return s, nil
}

// Token implements [SessionProvider]. An expired token is refused locally,
// without a round trip to the backend.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.signedOut {
		return "", ErrSignedOut
	}
	if s.claims.Expired(s.now()) {
		return "", ErrSessionExpired
	}

	return s.token, nil
}

// Session implements [SessionProvider].
func (s *Session) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

// SignOut implements [SessionProvider].
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.signedOut = true
}
