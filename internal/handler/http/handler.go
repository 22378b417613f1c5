// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
)

type Handler struct {
	services  *service.Services
	sessions  *sessionStore
	cfg       config.Server
	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  newSessionStore(services.NotesAppFactory, cfg, logger),
		cfg:       cfg,
		templates: templates,
		logger:    logger,
	}, nil
}
