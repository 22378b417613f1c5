// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the notes view logic shared by the terminal client
// and the web front.
//
// [NotesApp] owns the note collection and the form buffer of one view and
// turns user actions into calls to the backend adapters. Its state is
// guarded by a mutex, so UI command goroutines and HTTP handlers may call it
// concurrently.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NotesApp is the state and the actions of a single notes view.
type NotesApp interface {
	// FetchNotes replaces the collection with the backend list. Null entries
	// are dropped and every image key is resolved to a display URL. When a
	// resolution fails the collection is left untouched.
	FetchNotes(ctx context.Context) error

	// CreateNote submits the form buffer. It returns a nil note and a nil
	// error without calling the backend when name or description is empty,
	// and also when the backend returns a null record or the image URL
	// cannot be resolved. On success the note is appended and the form is
	// reset.
	CreateNote(ctx context.Context) (*models.Note, error)

	// DeleteNote removes every note with id from the collection, then asks
	// the backend to delete it. A failed request is returned but the local
	// removal is kept.
	DeleteNote(ctx context.Context, id string) error

	// AttachImage stores fileName as the pending image key, uploads data
	// under that key and refreshes the whole list. An empty fileName is a
	// no-op.
	AttachImage(ctx context.Context, fileName string, data []byte) error

	// Restore seeds an empty collection from the local snapshot cache.
	Restore(ctx context.Context) error

	SetName(name string)
	SetDescription(description string)
	ResetForm()

	// Form returns a copy of the form buffer.
	Form() models.NoteForm

	// Notes returns a copy of the collection.
	Notes() []models.Note

	// Session returns the claims of the signed-in user.
	Session() models.Session

	// ImagesEnabled reports whether an object-storage gateway is configured.
	ImagesEnabled() bool

	// SignOut forgets the session token and clears the view.
	SignOut()
}

// NotesAppFactory builds independent notes views. Every view gets its own
// session, form buffer and collection.
type NotesAppFactory interface {
	NewNotesApp() (NotesApp, error)
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
