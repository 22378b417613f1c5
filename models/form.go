// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteForm is the transient input buffer bound to the notes view.
// It is reset to its zero value after a note has been created.
type NoteForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Image is the pending storage key, set when a file is attached.
	Image string `json:"image,omitempty"`
}

// IsEmpty reports whether every field of the form is blank.
func (f NoteForm) IsEmpty() bool {
	return f == NoteForm{}
}

// ToInput converts the form buffer into a createNote mutation input.
// An empty image key is omitted from the input.
func (f NoteForm) ToInput() CreateNoteInput {
	input := CreateNoteInput{
		Name:        f.Name,
		Description: f.Description,
	}
	if f.Image != "" {
		image := f.Image
		input.Image = &image
	}

	return input
}
