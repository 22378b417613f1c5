// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, HMAC hashing, JSON response writing,
// the shared resty client, session token parsing and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the browser session identifier
// in the request context.
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, "0190...")
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the browser session identifier from the
// context. ok is false when the value is missing, empty or of another type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
