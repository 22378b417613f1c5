// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AnonymousOwner keys local state when no session token is configured.
const AnonymousOwner = "anonymous"

// Session holds the claims of the session token issued by the identity
// provider. The token itself is verified by the backend, never by the client.
type Session struct {
	// Subject is the "sub" claim: the stable user identifier.
	Subject string

	// Username is the human readable login, if the token carries one.
	Username string

	// ExpiresAt is the "exp" claim. Zero means the token does not expire.
	ExpiresAt time.Time
}

// Owner returns the key under which the user's local state is stored.
func (s Session) Owner() string {
	if s.Subject == "" {
		return AnonymousOwner
	}
	return s.Subject
}

// DisplayName returns the name shown in the notes view header.
func (s Session) DisplayName() string {
	switch {
	case s.Username != "":
		return s.Username
	case s.Subject != "":
		return s.Subject
	default:
		return AnonymousOwner
	}
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
