// Package tui is the terminal front end: a profile list, a profile form and
// the live timer screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/engine"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateList SessionState = iota
	StateForm
	StateActive
)

const eventBuffer = 64

// Options configure a MainModel.
type Options struct {
	ReportDir string
	Theme     string
}

// MainModel is the root bubbletea model that switches between screens.
type MainModel struct {
	state     SessionState
	db        Database
	engine    *engine.Engine
	events    <-chan engine.Event
	registry  *HandlerRegistry
	theme     Theme
	list      listState
	form      formState
	run       models.ActiveRun
	hasRun    bool
	progress  progress.Model
	reportDir string
	err       error
	Message   string
	width     int
	height    int
}

func NewMainModel(db Database, eng *engine.Engine, opts Options) MainModel {
	m := MainModel{
		state:     StateList,
		db:        db,
		engine:    eng,
		events:    eng.Subscribe(eventBuffer),
		registry:  NewHandlerRegistry(),
		theme:     ThemeByName(opts.Theme),
		list:      newListState(),
		progress:  progress.New(progress.WithDefaultGradient()),
		reportDir: opts.ReportDir,
	}
	m.progress.Width = config.TargetNameWidth
	registerListKeys(m.registry)
	registerActiveKeys(m.registry)
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(loadProfilesCmd(m.db, m.list.query), waitForEvent(m.events))
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case profilesLoadedMsg:
		return m.handleProfilesLoaded(msg)
	case profileSavedMsg:
		return m.handleProfileSaved(msg)
	case profileDeletedMsg:
		return m.handleProfileDeleted(msg)
	case reportDoneMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("report failed: %w", msg.err)
		} else {
			m.Message = "Report saved to " + msg.path
		}
		return m, nil
	case engineEventMsg:
		m.syncRun()
		if msg.Type == engine.EventFinished {
			m.Message = "Workout complete"
		}
		return m, waitForEvent(m.events)
	case engineClosedMsg:
		return m, nil
	}

	if m.state == StateForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.updateInput(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetNameWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinNameWidth {
			target = config.MinNameWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.err = nil
	m.Message = ""
	if key != "d" {
		m.list.pendingDelete = ""
	}

	switch {
	case m.state == StateForm:
		return m.handleFormKey(msg)
	case m.state == StateList && m.list.filtering:
		return m.handleFilterKey(msg)
	}

	next, cmd, _ := m.registry.Handle(m, key)
	return next, cmd
}

// syncRun copies the engine's current run into the model.
func (m *MainModel) syncRun() {
	m.run, m.hasRun = m.engine.State()
}

func (m MainModel) View() string {
	var b strings.Builder
	switch m.state {
	case StateList:
		b.WriteString(m.renderList())
	case StateForm:
		b.WriteString(m.renderForm())
	case StateActive:
		b.WriteString(m.renderActive())
	}

	if m.err != nil {
		b.WriteString("\n" + m.theme.Error.Render("Error: "+m.err.Error()))
	} else if m.Message != "" {
		b.WriteString("\n" + m.theme.Highlight.Render(m.Message))
	}
	if help := m.helpLine(); help != "" {
		b.WriteString("\n\n" + m.theme.Dim.Render(help))
	}
	return m.theme.Base.Render(b.String())
}

func (m MainModel) helpLine() string {
	switch {
	case m.state == StateForm:
		return "[tab]next | [shift+tab]prev | [ctrl+s]save | [esc]cancel"
	case m.state == StateList && m.list.filtering:
		return "[enter]apply | [esc]clear"
	}
	return m.registry.HelpForState(m.state)
}
