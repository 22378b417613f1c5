// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const appTitle = "My Notes App"

// Focus targets, cycled with tab.
const (
	focusName = iota
	focusDescription
	focusImage
	focusList
	focusCount
)

const (
	nameWidth        = 24
	descriptionWidth = 40
)

type notesModel struct {
	ctx       context.Context
	app       service.NotesApp
	buildInfo models.AppBuildInfo
	userName  string

	inputs []textinput.Model
	focus  int

	notes []models.Note
	idx   int

	loading   bool
	saving    bool
	uploading bool
	status    string
	errMsg    string

	showBuildInfo bool
	signedOut     bool
}

func newNotesModel(ctx context.Context, app service.NotesApp, buildInfo models.AppBuildInfo) notesModel {
	name := textinput.New()
	name.Placeholder = "Note name"
	name.Width = nameWidth
	name.Focus()

	description := textinput.New()
	description.Placeholder = "Note description"
	description.Width = descriptionWidth

	image := textinput.New()
	image.Placeholder = "Path to image, enter to attach"
	image.Width = descriptionWidth

	return notesModel{
		ctx:       ctx,
		app:       app,
		buildInfo: buildInfo,
		userName:  app.Session().DisplayName(),
		inputs:    []textinput.Model{name, description, image},
		focus:     focusName,
		loading:   true,
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRestore(), m.cmdFetch())
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesRestoredMsg:
		if msg.err != nil {
			m.errMsg = humanizeError("restore", msg.err)
			return m, nil
		}
		m.setNotes(m.app.Notes())
		return m, nil
	case notesFetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError("fetch", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.setNotes(m.app.Notes())
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError("refresh", msg.err)
			return m, nil
		}
		m.setNotes(m.app.Notes())
		return m, nil
	case noteCreatedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError("create", msg.err)
			return m, nil
		}
		if msg.note == nil {
			form := m.app.Form()
			if form.Name == "" || form.Description == "" {
				m.status = "Name and description are required"
			} else {
				m.status = "Note was not added"
			}
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Note %q created", msg.note.Name)
		m.syncInputsFromForm()
		m.setNotes(m.app.Notes())
		return m, nil
	case noteDeletedMsg:
		m.setNotes(m.app.Notes())
		if msg.err != nil {
			m.errMsg = humanizeError("delete", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Note deleted"
		return m, nil
	case imageAttachedMsg:
		m.uploading = false
		if msg.err != nil {
			m.errMsg = humanizeError("upload", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Image %s uploaded", msg.fileName)
		m.inputs[focusImage].SetValue(m.app.Form().Image)
		m.setNotes(m.app.Notes())
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.signOut):
		m.app.SignOut()
		m.signedOut = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = "Refreshing..."
		return m, m.cmdFetch()
	case key.Matches(keyMsg, keys.create):
		if m.saving {
			return m, nil
		}
		m.bindForm()
		m.saving = true
		m.status = "Saving..."
		return m, m.cmdCreate()
	case key.Matches(keyMsg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return m, nil
	}

	if m.focus == focusList {
		return m.updateList(keyMsg)
	}

	if m.focus == focusImage && key.Matches(keyMsg, keys.enter) {
		return m.attachImage()
	}

	return m.updateInput(msg)
}

func (m notesModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		// the view drops the note at once, the app does the same on its side
		m.setNotes(slices.DeleteFunc(m.notes, func(n models.Note) bool {
			return n.ID == note.ID
		}))
		m.status = "Deleting..."
		return m, m.cmdDelete(note.ID)
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.current()
		if !ok || note.ImageURL == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := clipboard.WriteAll(note.ImageURL); err != nil {
			m.errMsg = humanizeError("copy", err)
			return m, nil
		}
		m.status = "Image URL copied"
	}

	return m, nil
}

func (m notesModel) attachImage() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.inputs[focusImage].Value())
	if path == "" {
		return m, nil
	}
	if !m.app.ImagesEnabled() {
		m.errMsg = humanizeError("upload", service.ErrImagesDisabled)
		return m, nil
	}
	if m.uploading {
		return m, nil
	}

	m.uploading = true
	m.status = "Uploading..."
	return m, m.cmdAttach(path)
}

// updateInput forwards msg to the focused input and binds the form.
func (m notesModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey && m.focus != focusImage {
		m.bindForm()
	}
	return m, cmd
}

func (m *notesModel) bindForm() {
	m.app.SetName(strings.TrimSpace(m.inputs[focusName].Value()))
	m.app.SetDescription(strings.TrimSpace(m.inputs[focusDescription].Value()))
}

// syncInputsFromForm shows the form buffer of the app in the inputs.
func (m *notesModel) syncInputsFromForm() {
	form := m.app.Form()
	m.inputs[focusName].SetValue(form.Name)
	m.inputs[focusDescription].SetValue(form.Description)
	if form.Image == "" {
		m.inputs[focusImage].SetValue("")
	}
}

func (m *notesModel) setFocus(focus int) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focus
	if focus < len(m.inputs) {
		m.inputs[focus].Focus()
	}
}

func (m *notesModel) setNotes(notes []models.Note) {
	m.notes = notes
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m notesModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m notesModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(m.userName)
	b.WriteString("\n\n")

	labels := []string{"Name       ", "Description", "Image      "}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewList())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	hotKeys := "tab: next field │ ctrl+s: create │ ctrl+r: refresh │ ctrl+x: sign out │ ctrl+v: about"
	if m.focus == focusList {
		hotKeys = "↑/↓: select │ d: delete │ c: copy image url │ tab: next field │ ctrl+x: sign out"
	} else if m.focus == focusImage {
		hotKeys = "enter: attach image │ tab: next field │ ctrl+s: create │ ctrl+x: sign out"
	}

	return renderPage(appTitle, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m notesModel) viewList() string {
	if m.loading && len(m.notes) == 0 {
		return "Loading notes..."
	}
	if len(m.notes) == 0 {
		return "No notes yet"
	}

	var b strings.Builder
	for i, note := range m.notes {
		line := fmt.Sprintf("%-*s │ %-*s │ %s",
			nameWidth, fitText(note.Name, nameWidth),
			descriptionWidth, fitText(note.Description, descriptionWidth),
			valueOrDash(note.ImageURL),
		)

		if m.focus == focusList && i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m notesModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		return notesRestoredMsg{err: app.Restore(ctx)}
	}
}

func (m notesModel) cmdFetch() tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		return notesFetchedMsg{err: app.FetchNotes(ctx)}
	}
}

func (m notesModel) cmdCreate() tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		note, err := app.CreateNote(ctx)
		return noteCreatedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: app.DeleteNote(ctx, id)}
	}
}

// cmdAttach reads the file at path and uploads it under its base name.
func (m notesModel) cmdAttach(path string) tea.Cmd {
	ctx := m.ctx
	app := m.app

	return func() tea.Msg {
		fileName := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			return imageAttachedMsg{fileName: fileName, err: fmt.Errorf("read %s: %w", path, err)}
		}

		return imageAttachedMsg{fileName: fileName, err: app.AttachImage(ctx, fileName, data)}
	}
}
