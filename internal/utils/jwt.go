// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned when a session token cannot be parsed.
var ErrInvalidSessionToken = errors.New("invalid session token")

// usernameClaims lists claim names that carry a human readable login, in
// order of preference.
var usernameClaims = []string{"username", "cognito:username", "preferred_username", "email"}

// ParseSessionToken extracts the session claims from tokenString without
// verifying its signature. Verification is left to the backend.
func ParseSessionToken(tokenString string) (models.Session, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Session{}, ErrInvalidSessionToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	session := models.Session{Subject: subject}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}
	if exp != nil {
		session.ExpiresAt = exp.Time
	}

	for _, name := range usernameClaims {
		if username, ok := claims[name].(string); ok && username != "" {
			session.Username = username
			break
		}
	}

	return session, nil
}
