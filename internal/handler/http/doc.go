// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web front of the notes view.
//
// Every browser gets its own notes view, keyed by the notes_session cookie
// and kept in an expiring LRU. The page is rendered server side from
// embedded html/template files; form posts follow the post/redirect/get
// pattern and surface failures in a one-shot error line. Request tracing,
// access logging, response compression and panic recovery are handled by
// middleware before requests reach the notes view.
package http
