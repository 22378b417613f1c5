// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubUI struct {
	signedOut bool
	err       error
	calls     int
}

func (s *stubUI) Run(context.Context) (bool, error) {
	s.calls++
	return s.signedOut, s.err
}

func TestNewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := mock.NewMockNotesAppFactory(ctrl)
	notesApp := mock.NewMockNotesApp(ctrl)
	factory.EXPECT().NewNotesApp().Return(notesApp, nil)
	notesApp.EXPECT().Session().Return(models.Session{Subject: "u-1"})
	notesApp.EXPECT().ImagesEnabled().Return(true)

	services := &service.Services{
		AppInfoService:  mock.NewMockAppInfoService(ctrl),
		NotesAppFactory: factory,
	}

	app, err := NewApp(services, config.Workers{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, app.ui)
}

func TestNewApp_FactoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := mock.NewMockNotesAppFactory(ctrl)
	factory.EXPECT().NewNotesApp().Return(nil, errors.New("parse session token: malformed"))

	_, err := NewApp(&service.Services{NotesAppFactory: factory}, config.Workers{}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open notes view")
}

func TestApp_Run(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		ui      *stubUI
		wantErr bool
	}{
		{name: "quit", ctx: context.Background(), ui: &stubUI{}},
		{name: "sign out", ctx: context.Background(), ui: &stubUI{signedOut: true}},
		{name: "ui error", ctx: context.Background(), ui: &stubUI{err: errors.New("no tty")}, wantErr: true},
		{name: "killed by signal", ctx: cancelled, ui: &stubUI{err: tea.ErrProgramKilled}},
		{name: "killed without signal", ctx: context.Background(), ui: &stubUI{err: tea.ErrProgramKilled}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &App{ui: tt.ui, logger: logger.Nop()}

			err := app.Run(tt.ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, tt.ui.calls)
		})
	}
}
