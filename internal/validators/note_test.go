// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("form value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.NoteForm{Name: "n", Description: "d"}))
	})

	t.Run("form pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.NoteForm{Name: "n", Description: "d"}))
	})

	t.Run("create input", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.CreateNoteInput{Name: "n", Description: "d", Image: strPtr("cat.png")}))
	})

	t.Run("delete input pointer", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, &models.DeleteNoteInput{}), ErrEmptyID)
	})

	t.Run("image key", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, "cat.png"))
	})
}

func TestValidate_NoteForm(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		form    models.NoteForm
		fields  []string
		wantErr error
	}{
		{name: "complete", form: models.NoteForm{Name: "n", Description: "d"}},
		{name: "empty name", form: models.NoteForm{Description: "d"}, wantErr: ErrEmptyName},
		{name: "empty description", form: models.NoteForm{Name: "n"}, wantErr: ErrEmptyDescription},
		{name: "empty form", form: models.NoteForm{}, wantErr: ErrEmptyName},
		{name: "only description checked", form: models.NoteForm{Description: "d"}, fields: []string{FieldDescription}},
		{name: "empty image is fine", form: models.NoteForm{}, fields: []string{FieldImage}},
		{name: "bad image", form: models.NoteForm{Image: "../etc/passwd"}, fields: []string{FieldImage}, wantErr: ErrInvalidImageKey},
		{name: "unknown field", form: models.NoteForm{}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.form, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_CreateNoteInput_EmptyImagePointer(t *testing.T) {
	err := NewNoteValidator().Validate(context.Background(),
		models.CreateNoteInput{Name: "n", Description: "d", Image: strPtr("")}, FieldImage)

	assert.ErrorIs(t, err, ErrInvalidImageKey)
}

func TestValidate_DeleteNoteInput(t *testing.T) {
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), models.DeleteNoteInput{ID: "1"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.DeleteNoteInput{}), ErrEmptyID)
}

func TestValidate_ImageKey(t *testing.T) {
	v := NewNoteValidator()

	valid := []string{"cat.png", "holiday photo.jpeg", "снимок.png"}
	for _, key := range valid {
		assert.NoError(t, v.Validate(context.Background(), key), key)
	}

	invalid := []string{"", ".", "..", "a/b.png", `a\b.png`, "bad\x00.png", "tab\t.png"}
	for _, key := range invalid {
		assert.ErrorIs(t, v.Validate(context.Background(), key), ErrInvalidImageKey, key)
	}
}
