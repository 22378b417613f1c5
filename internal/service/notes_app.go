// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentResolves bounds the signed URL requests of one fetch.
const maxConcurrentResolves = 8

type notesApp struct {
	api       adapter.NotesAPI
	storage   adapter.ObjectStorage
	session   adapter.SessionProvider
	snapshots store.SnapshotRepository
	validator validators.Validator

	logger *logger.Logger

	mu      sync.RWMutex
	notes   []models.Note
	form    models.NoteForm
	fetched bool
}

// NewNotesApp constructs a [NotesApp]. storage and snapshots are optional:
// a nil storage disables images and a nil snapshots disables the cache.
func NewNotesApp(
	api adapter.NotesAPI,
	storage adapter.ObjectStorage,
	session adapter.SessionProvider,
	snapshots store.SnapshotRepository,
	logger *logger.Logger,
) NotesApp {
	return &notesApp{
		api:       api,
		storage:   storage,
		session:   session,
		snapshots: snapshots,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

// FetchNotes implements [NotesApp].
func (a *notesApp) FetchNotes(ctx context.Context) error {
	items, err := a.api.ListNotes(ctx)
	if errors.Is(err, adapter.ErrEmptyData) {
		a.logger.Warn().Msg("list notes returned no list, keeping current notes")
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}

	notes := excludeNulls(items)
	if err = a.resolveImageURLs(ctx, notes); err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}

	a.mu.Lock()
	a.notes = notes
	a.fetched = true
	a.mu.Unlock()

	a.saveSnapshot(ctx, notes)

	a.logger.Debug().Int("notes", len(notes)).Msg("notes fetched")
	return nil
}

func excludeNulls(items []*models.Note) []models.Note {
	notes := make([]models.Note, 0, len(items))
	for _, item := range items {
		if item != nil {
			notes = append(notes, *item)
		}
	}

	return notes
}

// resolveImageURLs fills ImageURL of every note carrying an image key. Any
// failure cancels the remaining resolutions.
func (a *notesApp) resolveImageURLs(ctx context.Context, notes []models.Note) error {
	if a.storage == nil {
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)

	for i := range notes {
		if !notes[i].HasImage() {
			continue
		}

		g.Go(func() error {
			url, err := a.storage.Get(gCtx, notes[i].Image)
			if err != nil {
				return fmt.Errorf("resolve image %q: %w", notes[i].Image, err)
			}
			notes[i].ImageURL = url
			return nil
		})
	}

	return g.Wait()
}

func (a *notesApp) saveSnapshot(ctx context.Context, notes []models.Note) {
	if a.snapshots == nil {
		return
	}

	if err := a.snapshots.SaveSnapshot(ctx, a.session.Session().Owner(), notes); err != nil {
		a.logger.Warn().Err(err).Msg("failed to save notes snapshot")
	}
}

// CreateNote implements [NotesApp].
func (a *notesApp) CreateNote(ctx context.Context) (*models.Note, error) {
	form := a.Form()

	if err := a.validator.Validate(ctx, form, validators.FieldName, validators.FieldDescription); err != nil {
		if errors.Is(err, validators.ErrEmptyName) || errors.Is(err, validators.ErrEmptyDescription) {
			return nil, nil
		}
		return nil, err
	}

	note, err := a.api.CreateNote(ctx, form.ToInput())
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	if note == nil {
		a.logger.Warn().Str("name", form.Name).Msg("backend returned no record for created note")
		return nil, nil
	}

	if form.Image != "" {
		url, resolveErr := a.resolveImageURL(ctx, form.Image)
		if resolveErr != nil {
			a.logger.Warn().Err(resolveErr).
				Str("note_id", note.ID).
				Str("image", form.Image).
				Msg("image url not resolved, note not added to view")
			return nil, nil
		}
		note.ImageURL = url
	}

	a.mu.Lock()
	a.notes = append(a.notes, *note)
	a.form = models.NoteForm{}
	a.mu.Unlock()

	a.logger.Info().Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (a *notesApp) resolveImageURL(ctx context.Context, key string) (string, error) {
	if a.storage == nil {
		return "", ErrImagesDisabled
	}

	return a.storage.Get(ctx, key)
}

// DeleteNote implements [NotesApp].
func (a *notesApp) DeleteNote(ctx context.Context, id string) error {
	input := models.DeleteNoteInput{ID: id}
	if err := a.validator.Validate(ctx, input); err != nil {
		return err
	}

	a.mu.Lock()
	a.notes = slices.DeleteFunc(a.notes, func(n models.Note) bool {
		return n.ID == id
	})
	a.mu.Unlock()

	if _, err := a.api.DeleteNote(ctx, input); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	a.logger.Info().Str("note_id", id).Msg("note deleted")
	return nil
}

// AttachImage implements [NotesApp].
func (a *notesApp) AttachImage(ctx context.Context, fileName string, data []byte) error {
	if fileName == "" {
		return nil
	}
	if a.storage == nil {
		return ErrImagesDisabled
	}
	if err := a.validator.Validate(ctx, fileName); err != nil {
		return err
	}

	a.mu.Lock()
	a.form.Image = fileName
	a.mu.Unlock()

	if err := a.storage.Put(ctx, fileName, data); err != nil {
		return fmt.Errorf("upload image: %w", err)
	}

	return a.FetchNotes(ctx)
}

// Restore implements [NotesApp]. A snapshot never overwrites a list that
// was already fetched.
func (a *notesApp) Restore(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}

	notes, err := a.snapshots.LoadSnapshot(ctx, a.session.Session().Owner())
	if err != nil {
		return fmt.Errorf("restore notes: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.fetched {
		a.notes = notes
	}

	return nil
}

func (a *notesApp) SetName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form.Name = name
}

func (a *notesApp) SetDescription(description string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form.Description = description
}

func (a *notesApp) ResetForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.form = models.NoteForm{}
}

func (a *notesApp) Form() models.NoteForm {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.form
}

func (a *notesApp) Notes() []models.Note {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.notes)
}

func (a *notesApp) Session() models.Session {
	return a.session.Session()
}

func (a *notesApp) ImagesEnabled() bool {
	return a.storage != nil
}

// SignOut implements [NotesApp].
func (a *notesApp) SignOut() {
	a.session.SignOut()

	a.mu.Lock()
	defer a.mu.Unlock()
	a.notes = nil
	a.form = models.NoteForm{}
	a.fetched = false
}
