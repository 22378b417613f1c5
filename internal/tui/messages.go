// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-notes/models"

type notesRestoredMsg struct {
	err error
}

type notesFetchedMsg struct {
	err error
}

// refreshDoneMsg is sent by the background refresh worker.
type refreshDoneMsg struct {
	err error
}

type noteCreatedMsg struct {
	note *models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type imageAttachedMsg struct {
	fileName string
	err      error
}
