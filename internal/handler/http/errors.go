// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoBrowserSession is returned when a session-bound route runs
	// without the session middleware.
	ErrNoBrowserSession = errors.New("no browser session in request context")

	ErrTooManyUploads = errors.New("too many uploads, try again later")
	ErrUploadTooLarge = errors.New("image is too large")
	ErrInvalidUpload  = errors.New("invalid image upload")
)
