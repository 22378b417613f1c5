// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the web front and stops it gracefully on SIGTERM,
// SIGINT or SIGQUIT.
package server
