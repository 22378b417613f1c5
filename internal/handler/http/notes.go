// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ensureFetched seeds the view of a new session: the snapshot first, then
// the list from the backend.
func (h *Handler) ensureFetched(ctx context.Context, session *browserSession) error {
	if !session.needsFetch() {
		return nil
	}

	log := logger.FromContext(ctx)
	if err := session.app.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to restore notes snapshot")
	}

	if err := session.app.FetchNotes(ctx); err != nil {
		return err
	}

	session.markFetched()
	return nil
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	flash := session.popFlash()
	if err = h.ensureFetched(ctx, session); err != nil {
		log.Err(err).Msg("failed to fetch notes")
		flash = userMessage("fetch notes", err)
	}

	data := pageData{
		Title:         pageTitle,
		User:          session.app.Session().DisplayName(),
		Version:       h.services.AppInfoService.GetAppVersion(ctx),
		Notes:         session.app.Notes(),
		Form:          session.app.Form(),
		ImagesEnabled: session.app.ImagesEnabled(),
		Error:         flash,
	}

	var buf bytes.Buffer
	if err = h.templates.ExecuteTemplate(&buf, indexTemplate, data); err != nil {
		log.Err(err).Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err = r.ParseForm(); err != nil {
		session.setFlash(userMessage("create note", ErrInvalidUpload))
		redirectHome(w, r)
		return
	}

	session.app.SetName(strings.TrimSpace(r.PostFormValue("name")))
	session.app.SetDescription(strings.TrimSpace(r.PostFormValue("description")))

	note, err := session.app.CreateNote(ctx)
	switch {
	case err != nil:
		log.Err(err).Msg("failed to create note")
		session.setFlash(userMessage("create note", err))
	case note == nil:
		form := session.app.Form()
		if form.Name == "" || form.Description == "" {
			session.setFlash("create note: name and description are required")
		} else {
			session.setFlash("create note: the note was not added")
		}
	}

	redirectHome(w, r)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id := chi.URLParam(r, "id")
	if err = session.app.DeleteNote(ctx, id); err != nil {
		log.Err(err).Str("note_id", id).Msg("failed to delete note")
		session.setFlash(userMessage("delete note", err))
	}

	redirectHome(w, r)
}

// uploadImage handles the file input of the page. An empty file input is a
// no-op.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if !session.limiter.Allow() {
		log.Warn().Msg("image upload rate limit exceeded")
		http.Error(w, ErrTooManyUploads.Error(), http.StatusTooManyRequests)
		return
	}

	fileName, data, err := h.readUpload(w, r)
	if err != nil {
		log.Err(err).Msg("failed to read image upload")
		session.setFlash(userMessage("upload image", err))
		redirectHome(w, r)
		return
	}

	if err = session.app.AttachImage(ctx, fileName, data); err != nil {
		log.Err(err).Str("image", fileName).Msg("failed to attach image")
		session.setFlash(userMessage("upload image", err))
	}

	redirectHome(w, r)
}

// readUpload returns the base name and content of the "image" part. A
// request without a file yields an empty name.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", nil, ErrUploadTooLarge
		}
		return "", nil, ErrInvalidUpload
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, ErrInvalidUpload
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, ErrInvalidUpload
	}

	// browsers on Windows may send a full path
	fileName := filepath.Base(strings.ReplaceAll(header.Filename, "\\", "/"))
	if fileName == "." || fileName == "/" {
		fileName = ""
	}

	return fileName, data, nil
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	session.app.SignOut()
	if id, ok := utils.GetSessionIDFromContext(ctx); ok {
		h.sessions.remove(id)
	}
	http.SetCookie(w, expiredSessionCookie())

	log.Info().Msg("browser session signed out")
	redirectHome(w, r)
}

// listNotes serves the notes view as JSON.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := sessionFromContext(ctx)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err = h.ensureFetched(ctx, session); err != nil {
		log.Err(err).Msg("failed to fetch notes")
		utils.WriteJSONError(w, userMessage("fetch notes", err), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, session.app.Notes(), http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write notes")
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
