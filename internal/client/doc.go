// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It opens the notes view of the configured session, then runs the terminal
// UI together with its background refresh until the user quits or signs out.
package client
