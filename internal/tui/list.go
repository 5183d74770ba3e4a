package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const noProfilesMessage = "No profiles to show."

type listState struct {
	profiles      []models.TimerProfile
	cursor        int
	offset        int
	loaded        bool
	loadErr       error
	lastProfileID string
	selectID      string
	pendingDelete string
	filtering     bool
	filterInput   textinput.Model
	query         util.SearchQuery
}

func newListState() listState {
	fi := textinput.New()
	fi.Placeholder = "name, sets:4, rounds:2"
	fi.CharLimit = 100
	fi.Width = 40
	return listState{filterInput: fi}
}

func (l listState) selected() (models.TimerProfile, bool) {
	if l.cursor < 0 || l.cursor >= len(l.profiles) {
		return models.TimerProfile{}, false
	}
	return l.profiles[l.cursor], true
}

func (l *listState) moveCursor(delta int) {
	if len(l.profiles) == 0 {
		l.cursor = 0
		return
	}
	l.cursor = util.Clamp(l.cursor+delta, 0, len(l.profiles)-1)
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+config.MaxVisibleProfiles {
		l.offset = l.cursor - config.MaxVisibleProfiles + 1
	}
}

func (l *listState) selectByID(id string) bool {
	for i, p := range l.profiles {
		if p.ID == id {
			l.cursor = 0
			l.offset = 0
			l.moveCursor(i)
			return true
		}
	}
	return false
}

func registerListKeys(r *HandlerRegistry) {
	r.Bind(StateList, "", handleCursorUp, "up", "k")
	r.Bind(StateList, "", handleCursorDown, "down", "j")
	r.Bind(StateList, "start", handleOpenProfile, "enter")
	r.Bind(StateList, "new", handleNewProfile, "n")
	r.Bind(StateList, "edit", handleEditProfile, "e")
	r.Bind(StateList, "delete", handleDeleteProfile, "d")
	r.Bind(StateList, "filter", handleStartFilter, "/")
	r.Bind(StateList, "reload", handleReload, "r")
	r.Bind(StateList, "pdf", handleReport, "p")
	r.Bind(StateList, "quit", handleQuit, "q")
}

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.list.moveCursor(-1)
	return m, nil, true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.list.moveCursor(1)
	return m, nil, true
}

func handleOpenProfile(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	profile, ok := m.list.selected()
	if !ok {
		return m, nil, true
	}
	if err := m.engine.Open(profile); err != nil {
		m.err = err
		return m, nil, true
	}
	m.state = StateActive
	m.syncRun()
	m.list.lastProfileID = profile.ID
	return m, rememberProfileCmd(m.db, profile.ID), true
}

func handleNewProfile(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.form = newFormState(nil)
	m.state = StateForm
	return m, textinput.Blink, true
}

func handleEditProfile(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	profile, ok := m.list.selected()
	if !ok {
		return m, nil, true
	}
	m.form = newFormState(&profile)
	m.state = StateForm
	return m, textinput.Blink, true
}

func handleDeleteProfile(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	profile, ok := m.list.selected()
	if !ok {
		return m, nil, true
	}
	if m.list.pendingDelete != profile.ID {
		m.list.pendingDelete = profile.ID
		m.Message = fmt.Sprintf("Press d again to delete %q", profile.Name)
		return m, nil, true
	}
	m.list.pendingDelete = ""
	return m, deleteProfileCmd(m.db, profile.ID), true
}

func handleStartFilter(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.list.filtering = true
	m.list.filterInput.Focus()
	return m, textinput.Blink, true
}

func handleReload(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, loadProfilesCmd(m.db, m.list.query), true
}

func handleReport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if len(m.list.profiles) == 0 {
		m.Message = noProfilesMessage
		return m, nil, true
	}
	m.Message = "Generating report..."
	return m, reportCmd(m.list.profiles, m.reportDir, time.Now()), true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func (m MainModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.list.filtering = false
		m.list.filterInput.Blur()
		m.list.query = util.ParseSearchQuery(m.list.filterInput.Value())
		return m, loadProfilesCmd(m.db, m.list.query)
	case tea.KeyEsc:
		m.list.filtering = false
		m.list.filterInput.Blur()
		m.list.filterInput.SetValue("")
		m.list.query = util.SearchQuery{}
		return m, loadProfilesCmd(m.db, m.list.query)
	}
	var cmd tea.Cmd
	m.list.filterInput, cmd = m.list.filterInput.Update(msg)
	return m, cmd
}

func (m MainModel) handleProfilesLoaded(msg profilesLoadedMsg) (tea.Model, tea.Cmd) {
	m.list.loaded = true
	if msg.err != nil {
		util.LogError("load profiles", msg.err)
		m.list.loadErr = msg.err
		m.list.profiles = nil
		m.list.cursor, m.list.offset = 0, 0
		return m, nil
	}
	target := m.list.selectID
	if target == "" {
		if current, ok := m.list.selected(); ok {
			target = current.ID
		}
	}
	if m.list.lastProfileID == "" {
		m.list.lastProfileID = msg.lastProfileID
	}
	if target == "" {
		target = m.list.lastProfileID
	}

	m.list.loadErr = nil
	m.list.selectID = ""
	m.list.profiles = msg.profiles
	if !m.list.selectByID(target) {
		m.list.moveCursor(0)
	}
	return m, nil
}

func (m MainModel) handleProfileDeleted(msg profileDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = fmt.Errorf("delete failed: %w", msg.err)
		return m, nil
	}
	m.Message = "Profile deleted"
	return m, loadProfilesCmd(m.db, m.list.query)
}

func (m MainModel) nameWidth() int {
	width := config.TargetNameWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		width = m.width / 2
	}
	if width < config.MinNameWidth {
		width = config.MinNameWidth
	}
	return width
}

func (m MainModel) renderList() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Interval Timer"))
	b.WriteString(" " + m.theme.Dim.Render(VersionLabel()))
	b.WriteString("\n\n")

	if m.list.filtering {
		b.WriteString(m.theme.Input.Render(m.list.filterInput.View()))
		b.WriteString("\n\n")
	} else if !m.list.query.Empty() {
		b.WriteString(m.theme.Dim.Render("Filter: " + m.list.filterInput.Value()))
		b.WriteString("\n\n")
	}

	switch {
	case !m.list.loaded:
		b.WriteString(m.theme.Dim.Render("Loading profiles..."))
		return b.String()
	case m.list.loadErr != nil:
		b.WriteString(noProfilesMessage + "\n")
		b.WriteString(m.theme.Dim.Render("Press r to try again."))
		return b.String()
	case len(m.list.profiles) == 0 && m.list.query.Empty():
		b.WriteString("No profiles yet. Press n to create one.")
		return b.String()
	case len(m.list.profiles) == 0:
		b.WriteString(noProfilesMessage)
		return b.String()
	}

	nameWidth := m.nameWidth()
	end := m.list.offset + config.MaxVisibleProfiles
	if end > len(m.list.profiles) {
		end = len(m.list.profiles)
	}
	for i := m.list.offset; i < end; i++ {
		p := m.list.profiles[i]
		row := fmt.Sprintf("%s  %8s  %dx%d",
			padLabel(truncateLabel(p.Name, nameWidth), nameWidth),
			util.FormatDuration(p.TotalDuration()),
			p.Sets, p.Rounds)
		if i == m.list.cursor {
			b.WriteString(m.theme.Focused.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	if end < len(m.list.profiles) || m.list.offset > 0 {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%d-%d of %d", m.list.offset+1, end, len(m.list.profiles))))
		b.WriteString("\n")
	}
	if p, ok := m.list.selected(); ok {
		if desc := util.Deref(p.Description); desc != "" {
			b.WriteString("\n" + m.theme.Dim.Render(desc))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
