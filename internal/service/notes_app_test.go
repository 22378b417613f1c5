// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notesAppMocks struct {
	api       *mock.MockNotesAPI
	storage   *mock.MockObjectStorage
	session   *mock.MockSessionProvider
	snapshots *mock.MockSnapshotRepository
}

// newTestNotesApp wires a NotesApp with every dependency mocked.
func newTestNotesApp(t *testing.T, ctrl *gomock.Controller) (service.NotesApp, notesAppMocks) {
	t.Helper()

	m := notesAppMocks{
		api:       mock.NewMockNotesAPI(ctrl),
		storage:   mock.NewMockObjectStorage(ctrl),
		session:   mock.NewMockSessionProvider(ctrl),
		snapshots: mock.NewMockSnapshotRepository(ctrl),
	}
	m.session.EXPECT().Session().Return(models.Session{Subject: "u-1", Username: "alice"}).AnyTimes()

	return service.NewNotesApp(m.api, m.storage, m.session, m.snapshots, logger.Nop()), m
}

func noteIDs(notes []models.Note) []string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

// seedNotes fills the app state through a successful fetch.
func seedNotes(t *testing.T, app service.NotesApp, m notesAppMocks, notes ...*models.Note) {
	t.Helper()

	m.api.EXPECT().ListNotes(gomock.Any()).Return(notes, nil)
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), "u-1", gomock.Any()).Return(nil)
	require.NoError(t, app.FetchNotes(context.Background()))
}

// ── FetchNotes ───────────────────────────────────────────────────────────────

func TestNotesApp_FetchNotes_ExcludesNullsAndResolvesImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	ctx := context.Background()

	items := []*models.Note{
		{ID: "1", Name: "a", Description: "first"},
		nil,
		{ID: "2", Name: "b", Description: "second", Image: "cat.png"},
		nil,
	}

	m.api.EXPECT().ListNotes(ctx).Return(items, nil).Times(1)
	m.storage.EXPECT().Get(gomock.Any(), "cat.png").Return("https://signed/cat.png", nil).Times(1)
	m.snapshots.EXPECT().SaveSnapshot(ctx, "u-1", gomock.Len(2)).Return(nil).Times(1)

	require.NoError(t, app.FetchNotes(ctx))

	notes := app.Notes()
	assert.Equal(t, []string{"1", "2"}, noteIDs(notes))
	assert.Empty(t, notes[0].ImageURL)
	assert.Equal(t, "https://signed/cat.png", notes[1].ImageURL)
}

func TestNotesApp_FetchNotes_ResolveErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "old"})

	items := []*models.Note{
		{ID: "1", Image: "a.png"},
		{ID: "2", Image: "b.png"},
	}
	m.api.EXPECT().ListNotes(gomock.Any()).Return(items, nil)
	m.storage.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", adapter.ErrNotFound).MinTimes(1).MaxTimes(2)

	err := app.FetchNotes(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Equal(t, []string{"old"}, noteIDs(app.Notes()))
}

func TestNotesApp_FetchNotes_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	m.api.EXPECT().ListNotes(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	err := app.FetchNotes(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), "fetch notes")
}

func TestNotesApp_FetchNotes_EmptyDataKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "kept"})

	m.api.EXPECT().ListNotes(gomock.Any()).Return(nil, fmt.Errorf("list notes: %w", adapter.ErrEmptyData))

	require.NoError(t, app.FetchNotes(context.Background()))
	assert.Equal(t, []string{"kept"}, noteIDs(app.Notes()))
}

func TestNotesApp_FetchNotes_SnapshotErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	m.api.EXPECT().ListNotes(gomock.Any()).Return([]*models.Note{{ID: "1"}}, nil)
	m.snapshots.EXPECT().SaveSnapshot(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("disk full"))

	require.NoError(t, app.FetchNotes(context.Background()))
	assert.Equal(t, []string{"1"}, noteIDs(app.Notes()))
}

// ── CreateNote ───────────────────────────────────────────────────────────────

func TestNotesApp_CreateNote_EmptyFieldsNoCall(t *testing.T) {
	tests := []struct {
		name        string
		noteName    string
		description string
	}{
		{name: "empty name", noteName: "", description: "d"},
		{name: "empty description", noteName: "n", description: ""},
		{name: "both empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no CreateNote expectation: any call fails the test
			app, _ := newTestNotesApp(t, ctrl)
			app.SetName(tt.noteName)
			app.SetDescription(tt.description)

			note, err := app.CreateNote(context.Background())

			require.NoError(t, err)
			assert.Nil(t, note)
			assert.Equal(t, models.NoteForm{Name: tt.noteName, Description: tt.description}, app.Form())
		})
	}
}

func TestNotesApp_CreateNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	ctx := context.Background()
	app.SetName("groceries")
	app.SetDescription("milk")

	created := &models.Note{ID: "n-1", Name: "groceries", Description: "milk"}
	m.api.EXPECT().
		CreateNote(ctx, models.CreateNoteInput{Name: "groceries", Description: "milk"}).
		Return(created, nil).
		Times(1)

	note, err := app.CreateNote(ctx)

	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "n-1", note.ID)
	assert.True(t, app.Form().IsEmpty())
	assert.Equal(t, []string{"n-1"}, noteIDs(app.Notes()))
}

func TestNotesApp_CreateNote_WithImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	ctx := context.Background()

	m.storage.EXPECT().Put(ctx, "cat.png", []byte("png")).Return(nil)
	m.api.EXPECT().ListNotes(ctx).Return([]*models.Note{}, nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, "u-1", gomock.Any()).Return(nil)
	require.NoError(t, app.AttachImage(ctx, "cat.png", []byte("png")))

	app.SetName("cat")
	app.SetDescription("photo")

	image := "cat.png"
	m.api.EXPECT().
		CreateNote(ctx, models.CreateNoteInput{Name: "cat", Description: "photo", Image: &image}).
		Return(&models.Note{ID: "n-2", Name: "cat", Description: "photo", Image: "cat.png"}, nil)
	m.storage.EXPECT().Get(ctx, "cat.png").Return("https://signed/cat.png", nil)

	note, err := app.CreateNote(ctx)

	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "https://signed/cat.png", note.ImageURL)
	assert.True(t, app.Form().IsEmpty())

	notes := app.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "https://signed/cat.png", notes[0].ImageURL)
}

func TestNotesApp_CreateNote_NullRecordKeepsForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	app.SetName("n")
	app.SetDescription("d")

	m.api.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, nil)

	note, err := app.CreateNote(context.Background())

	require.NoError(t, err)
	assert.Nil(t, note)
	assert.Empty(t, app.Notes())
	assert.Equal(t, models.NoteForm{Name: "n", Description: "d"}, app.Form())
}

func TestNotesApp_CreateNote_ResolveFailureStopsSilently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	ctx := context.Background()

	m.storage.EXPECT().Put(ctx, "a.png", gomock.Any()).Return(nil)
	m.api.EXPECT().ListNotes(ctx).Return(nil, nil)
	m.snapshots.EXPECT().SaveSnapshot(ctx, "u-1", gomock.Any()).Return(nil)
	require.NoError(t, app.AttachImage(ctx, "a.png", []byte{1}))

	app.SetName("n")
	app.SetDescription("d")

	m.api.EXPECT().CreateNote(ctx, gomock.Any()).Return(&models.Note{ID: "n-3", Image: "a.png"}, nil)
	m.storage.EXPECT().Get(ctx, "a.png").Return("", adapter.ErrEmptySignedURL)

	note, err := app.CreateNote(ctx)

	require.NoError(t, err)
	assert.Nil(t, note)
	assert.Empty(t, app.Notes())
	assert.Equal(t, models.NoteForm{Name: "n", Description: "d", Image: "a.png"}, app.Form())
}

func TestNotesApp_CreateNote_APIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	app.SetName("n")
	app.SetDescription("d")

	m.api.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrGraphQL)

	note, err := app.CreateNote(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrGraphQL)
	assert.Nil(t, note)
	assert.Equal(t, "n", app.Form().Name)
}

// ── DeleteNote ───────────────────────────────────────────────────────────────

func TestNotesApp_DeleteNote_RemovesOnlyMatchingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "1"}, &models.Note{ID: "2"}, &models.Note{ID: "3"})

	m.api.EXPECT().DeleteNote(gomock.Any(), models.DeleteNoteInput{ID: "2"}).Return(&models.Note{ID: "2"}, nil).Times(1)

	require.NoError(t, app.DeleteNote(context.Background(), "2"))
	assert.Equal(t, []string{"1", "3"}, noteIDs(app.Notes()))
}

func TestNotesApp_DeleteNote_FailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "1"}, &models.Note{ID: "2"})

	m.api.EXPECT().DeleteNote(gomock.Any(), models.DeleteNoteInput{ID: "1"}).Return(nil, adapter.ErrInternalServerError)

	err := app.DeleteNote(context.Background(), "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, []string{"2"}, noteIDs(app.Notes()))
}

func TestNotesApp_DeleteNote_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestNotesApp(t, ctrl)

	err := app.DeleteNote(context.Background(), "")

	assert.ErrorIs(t, err, validators.ErrEmptyID)
}

// ── AttachImage ──────────────────────────────────────────────────────────────

func TestNotesApp_AttachImage_OneUploadOneRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	ctx := context.Background()
	data := []byte("image bytes")

	gomock.InOrder(
		m.storage.EXPECT().Put(ctx, "photo.jpg", data).Return(nil).Times(1),
		m.api.EXPECT().ListNotes(ctx).Return([]*models.Note{{ID: "1"}}, nil).Times(1),
	)
	m.snapshots.EXPECT().SaveSnapshot(ctx, "u-1", gomock.Any()).Return(nil)

	require.NoError(t, app.AttachImage(ctx, "photo.jpg", data))
	assert.Equal(t, "photo.jpg", app.Form().Image)
	assert.Equal(t, []string{"1"}, noteIDs(app.Notes()))
}

func TestNotesApp_AttachImage_NoFileNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestNotesApp(t, ctrl)

	require.NoError(t, app.AttachImage(context.Background(), "", nil))
	assert.Empty(t, app.Form().Image)
}

func TestNotesApp_AttachImage_UploadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	m.storage.EXPECT().Put(gomock.Any(), "a.png", gomock.Any()).Return(adapter.ErrForbidden)

	err := app.AttachImage(context.Background(), "a.png", []byte{1})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), "upload image")
}

func TestNotesApp_AttachImage_InvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestNotesApp(t, ctrl)

	err := app.AttachImage(context.Background(), "../etc/passwd", []byte{1})

	assert.ErrorIs(t, err, validators.ErrInvalidImageKey)
}

func TestNotesApp_AttachImage_ImagesDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockNotesAPI(ctrl)
	session := mock.NewMockSessionProvider(ctrl)
	app := service.NewNotesApp(api, nil, session, nil, logger.Nop())

	assert.False(t, app.ImagesEnabled())
	assert.ErrorIs(t, app.AttachImage(context.Background(), "a.png", []byte{1}), service.ErrImagesDisabled)
}

// ── Restore / SignOut ────────────────────────────────────────────────────────

func TestNotesApp_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	m.snapshots.EXPECT().LoadSnapshot(gomock.Any(), "u-1").Return([]models.Note{{ID: "cached"}}, nil)

	require.NoError(t, app.Restore(context.Background()))
	assert.Equal(t, []string{"cached"}, noteIDs(app.Notes()))
}

func TestNotesApp_Restore_DoesNotOverwriteFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "fresh"})
	m.snapshots.EXPECT().LoadSnapshot(gomock.Any(), "u-1").Return([]models.Note{{ID: "cached"}}, nil)

	require.NoError(t, app.Restore(context.Background()))
	assert.Equal(t, []string{"fresh"}, noteIDs(app.Notes()))
}

func TestNotesApp_Restore_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	m.snapshots.EXPECT().LoadSnapshot(gomock.Any(), "u-1").Return(nil, errors.New("db closed"))

	err := app.Restore(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore notes")
}

func TestNotesApp_Restore_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := service.NewNotesApp(mock.NewMockNotesAPI(ctrl), nil, mock.NewMockSessionProvider(ctrl), nil, logger.Nop())

	require.NoError(t, app.Restore(context.Background()))
	assert.Empty(t, app.Notes())
}

func TestNotesApp_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, m := newTestNotesApp(t, ctrl)
	seedNotes(t, app, m, &models.Note{ID: "1"})
	app.SetName("draft")

	m.session.EXPECT().SignOut().Times(1)

	app.SignOut()

	assert.Empty(t, app.Notes())
	assert.True(t, app.Form().IsEmpty())
}

func TestNotesApp_FormBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _ := newTestNotesApp(t, ctrl)

	app.SetName("n")
	app.SetDescription("d")
	assert.Equal(t, models.NoteForm{Name: "n", Description: "d"}, app.Form())
	assert.Equal(t, "alice", app.Session().DisplayName())

	app.ResetForm()
	assert.True(t, app.Form().IsEmpty())
}
