// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	ui UI

	logger *logger.Logger
}

// NewApp opens the notes view of the configured session and binds it to the
// terminal UI.
func NewApp(services *service.Services, workersCfg config.Workers, logger *logger.Logger) (*App, error) {
	notesApp, err := services.NotesAppFactory.NewNotesApp()
	if err != nil {
		return nil, fmt.Errorf("open notes view: %w", err)
	}

	session := notesApp.Session()
	logger.Info().
		Str("owner", session.Owner()).
		Bool("images", notesApp.ImagesEnabled()).
		Msg("notes view opened")

	return &App{
		ui:     tui.New(notesApp, services.AppInfoService, workersCfg, logger),
		logger: logger,
	}, nil
}

// Run implements [Client]. Cancelling ctx ends the session without error.
func (a *App) Run(ctx context.Context) error {
	signedOut, err := a.ui.Run(ctx)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Info().Msg("client stopped by signal")
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	if signedOut {
		a.logger.Info().Msg("user signed out")
	} else {
		a.logger.Info().Msg("user quit")
	}

	return nil
}
