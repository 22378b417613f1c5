// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"embed"
	"html/template"

	"github.com/MKhiriev/go-notes/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const indexTemplate = "index.html"

const pageTitle = "My Notes App"

// pageData is the model of index.html.
type pageData struct {
	Title         string
	User          string
	Version       string
	Notes         []models.Note
	Form          models.NoteForm
	ImagesEnabled bool
	Error         string
}

func parseTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}
