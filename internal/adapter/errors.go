// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrGraphQL        = errors.New("graphql error")
	ErrEmptyData      = errors.New("response carries no data")
	ErrEmptySignedURL = errors.New("storage returned an empty url")

	ErrSessionExpired = errors.New("session expired")
	ErrSignedOut      = errors.New("signed out")
)
