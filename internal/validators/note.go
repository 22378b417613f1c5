// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes/models"
)

// Field names accepted by NoteValidator.Validate.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
)

// NoteValidator validates the notes view inputs: NoteForm,
// CreateNoteInput, DeleteNoteInput and image keys (plain strings).
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. Without fields, name and description are checked for
// forms and inputs, the id for deletes and the key itself for strings.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteForm:
		return v.validateForm(value, fields...)
	case *models.NoteForm:
		return v.validateForm(*value, fields...)

	case models.CreateNoteInput:
		return v.validateCreateInput(value, fields...)
	case *models.CreateNoteInput:
		return v.validateCreateInput(*value, fields...)

	case models.DeleteNoteInput:
		return v.validateDeleteInput(value)
	case *models.DeleteNoteInput:
		return v.validateDeleteInput(*value)

	case string:
		return validateImageKey(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateForm(form models.NoteForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if form.Name == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if form.Description == "" {
				return ErrEmptyDescription
			}
		case FieldImage:
			if form.Image != "" {
				if err := validateImageKey(form.Image); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateCreateInput(input models.CreateNoteInput, fields ...string) error {
	form := models.NoteForm{Name: input.Name, Description: input.Description}
	if input.Image != nil {
		if *input.Image == "" {
			return ErrInvalidImageKey
		}
		form.Image = *input.Image
	}

	return v.validateForm(form, fields...)
}

func (v *NoteValidator) validateDeleteInput(input models.DeleteNoteInput) error {
	if input.ID == "" {
		return ErrEmptyID
	}

	return nil
}

// validateImageKey accepts flat object keys only: no path separators, no
// dot segments and no control characters.
func validateImageKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return ErrInvalidImageKey
	}

	if strings.ContainsAny(key, "/\\") {
		return ErrInvalidImageKey
	}

	for _, r := range key {
		if r < 0x20 || r == 0x7f {
			return ErrInvalidImageKey
		}
	}

	return nil
}
