// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the notes view in the terminal with bubbletea.
package tui

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/workers"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	app        service.NotesApp
	appInfo    service.AppInfoService
	workersCfg config.Workers

	logger *logger.Logger
}

func New(app service.NotesApp, appInfo service.AppInfoService, workersCfg config.Workers, logger *logger.Logger) *TUI {
	return &TUI{
		app:        app,
		appInfo:    appInfo,
		workersCfg: workersCfg,
		logger:     logger,
	}
}

// Run shows the notes view until the user quits or signs out. Background
// workers live as long as the view.
func (t *TUI) Run(ctx context.Context) (signedOut bool, err error) {
	model := newNotesModel(ctx, t.app, t.appInfo.GetBuildInfo(ctx))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	w := workers.NewWorkers(t.workersCfg, t.app, func(err error) {
		p.Send(refreshDoneMsg{err: err})
	}, t.logger)
	w.Run(ctx)
	defer w.Stop()

	finalModel, runErr := p.Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(notesModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.signedOut, nil
}
