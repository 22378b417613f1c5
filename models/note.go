// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a user-created record as returned by the backend GraphQL API.
//
// Image holds the object-storage key of the attached picture. ImageURL is
// never sent by the backend: it is filled on the client after the key has
// been resolved to a signed, fetchable URL.
type Note struct {
	// ID is assigned by the backend on creation.
	ID string `json:"id"`

	// Name is the note title.
	Name string `json:"name"`

	// Description is the note body.
	Description string `json:"description"`

	// Image is the storage key of the attached image, empty when none.
	Image string `json:"image,omitempty"`

	// ImageURL is the resolved display URL for Image.
	ImageURL string `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasImage reports whether the note references an object-storage key.
func (n Note) HasImage() bool {
	return n.Image != ""
}

// CreateNoteInput is the input object of the createNote mutation.
type CreateNoteInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
}

// DeleteNoteInput is the input object of the deleteNote mutation.
type DeleteNoteInput struct {
	ID string `json:"id"`
}
