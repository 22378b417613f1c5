// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/rs/zerolog"
)

type browserSessionCtxKey struct{}

// withSession attaches the browser session named by the session cookie to
// the request, opening a new one when the cookie is missing or stale.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var id string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			id = cookie.Value
		}

		session, ok := h.sessions.get(id)
		if !ok {
			var err error
			id, session, err = h.sessions.create()
			if err != nil {
				log.Err(err).Msg("failed to open browser session")
				http.Error(w, "unable to open a notes session", statusFromError(err))
				return
			}

			http.SetCookie(w, h.sessionCookie(id))
			log.Info().Str("session_id", id).Msg("browser session opened")
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("session_id", id)
		})

		ctx := context.WithValue(r.Context(), utils.SessionIDCtxKey, id)
		ctx = context.WithValue(ctx, browserSessionCtxKey{}, session)
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func sessionFromContext(ctx context.Context) (*browserSession, error) {
	session, ok := ctx.Value(browserSessionCtxKey{}).(*browserSession)
	if !ok || session == nil {
		return nil, ErrNoBrowserSession
	}
	return session, nil
}
