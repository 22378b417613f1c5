// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteForm_ToInput_OmitsEmptyImage(t *testing.T) {
	input := NoteForm{Name: "n", Description: "d"}.ToInput()

	assert.Equal(t, "n", input.Name)
	assert.Equal(t, "d", input.Description)
	assert.Nil(t, input.Image)
}

func TestNoteForm_ToInput_CopiesImage(t *testing.T) {
	form := NoteForm{Name: "n", Description: "d", Image: "cat.png"}
	input := form.ToInput()

	require.NotNil(t, input.Image)
	assert.Equal(t, "cat.png", *input.Image)

	*input.Image = "changed"
	assert.Equal(t, "cat.png", form.Image)
}

func TestNoteForm_IsEmpty(t *testing.T) {
	assert.True(t, NoteForm{}.IsEmpty())
	assert.False(t, NoteForm{Image: "x"}.IsEmpty())
}

func TestGraphQLErrors_Error(t *testing.T) {
	errs := GraphQLErrors{
		{Message: "not authorized", ErrorType: "Unauthorized"},
		{Message: "boom"},
	}

	assert.Equal(t, "Unauthorized: not authorized; boom", errs.Error())
}

func TestSession_OwnerAndDisplayName(t *testing.T) {
	assert.Equal(t, AnonymousOwner, Session{}.Owner())
	assert.Equal(t, AnonymousOwner, Session{}.DisplayName())

	s := Session{Subject: "sub-1"}
	assert.Equal(t, "sub-1", s.Owner())
	assert.Equal(t, "sub-1", s.DisplayName())

	s.Username = "alice"
	assert.Equal(t, "sub-1", s.Owner())
	assert.Equal(t, "alice", s.DisplayName())
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, Session{ExpiresAt: now}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.Version())
	assert.Equal(t, "2026-01-01", info.Date())
	assert.Equal(t, "N/A", info.Commit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A", info.String())
}
