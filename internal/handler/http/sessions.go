// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const sessionCookieName = "notes_session"

// browserSession is the notes view of one browser.
type browserSession struct {
	app     service.NotesApp
	limiter *rate.Limiter

	mu      sync.Mutex
	fetched bool
	flash   string
}

func (s *browserSession) setFlash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = msg
}

// popFlash returns the pending error line and clears it.
func (s *browserSession) popFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.flash
	s.flash = ""
	return msg
}

func (s *browserSession) needsFetch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.fetched
}

func (s *browserSession) markFetched() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetched = true
}

type sessionStore struct {
	factory service.NotesAppFactory
	cache   *expirable.LRU[string, *browserSession]
	ids     *utils.UUIDGenerator

	uploadsPerMinute int
}

func newSessionStore(factory service.NotesAppFactory, cfg config.Server, logger *logger.Logger) *sessionStore {
	onEvict := func(id string, _ *browserSession) {
		logger.Debug().Str("session_id", id).Msg("browser session evicted")
	}

	return &sessionStore{
		factory:          factory,
		cache:            expirable.NewLRU[string, *browserSession](cfg.MaxSessions, onEvict, cfg.SessionTTL),
		ids:              utils.NewUUIDGenerator(),
		uploadsPerMinute: cfg.UploadsPerMinute,
	}
}

func (s *sessionStore) get(id string) (*browserSession, bool) {
	if id == "" {
		return nil, false
	}
	return s.cache.Get(id)
}

// create opens a new notes view under a fresh session id.
func (s *sessionStore) create() (string, *browserSession, error) {
	app, err := s.factory.NewNotesApp()
	if err != nil {
		return "", nil, fmt.Errorf("create browser session: %w", err)
	}

	session := &browserSession{
		app:     app,
		limiter: newUploadLimiter(s.uploadsPerMinute),
	}

	id := s.ids.Generate()
	s.cache.Add(id, session)
	return id, session, nil
}

func (s *sessionStore) remove(id string) {
	s.cache.Remove(id)
}

func newUploadLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}
