// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the terminal client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Run must not block: implementations spawn their own goroutine and return.
// Stop cancels that goroutine and waits for it to exit. Both are safe to call
// more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
