// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the clients of the managed backend platform the
// notes view is built on.
//
// [NotesAPI] speaks GraphQL to the notes API, [ObjectStorage] talks to the
// object-storage gateway and [Session] holds the session token issued by the
// identity provider. Both HTTP clients share the session, so signing out or
// an expired token stops every outbound call.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// GraphQL error types so callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrGraphQL] for a response carrying an "errors" array).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesAPI is the GraphQL notes API.
type NotesAPI interface {
	// ListNotes runs the listNotes query and returns its items as sent by
	// the backend, null entries included. Returns [ErrEmptyData] when the
	// response carries no list at all.
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// CreateNote runs the createNote mutation. A nil note with a nil error
	// means the backend returned a null record.
	CreateNote(ctx context.Context, input models.CreateNoteInput) (*models.Note, error)

	// DeleteNote runs the deleteNote mutation and returns the deleted record,
	// which may be nil.
	DeleteNote(ctx context.Context, input models.DeleteNoteInput) (*models.Note, error)
}

// ObjectStorage is the object-storage gateway.
type ObjectStorage interface {
	// Put uploads data under key.
	Put(ctx context.Context, key string, data []byte) error

	// Get resolves key to a signed, fetchable URL.
	Get(ctx context.Context, key string) (string, error)
}

// SessionProvider supplies the session token attached to outbound requests.
type SessionProvider interface {
	// Token returns the raw token, or an error once the session expired or
	// was signed out. An empty token with a nil error means the platform is
	// reached with the API key only.
	Token() (string, error)

	// Session returns the claims of the current token.
	Session() models.Session

	// SignOut forgets the token.
	SignOut()
}
