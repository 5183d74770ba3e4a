package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func registerActiveKeys(r *HandlerRegistry) {
	r.Bind(StateActive, "play/pause", handleToggleRun, " ")
	r.Bind(StateActive, "next", handleSkipForward, "right", "l")
	r.Bind(StateActive, "previous", handleSkipBackward, "left", "h")
	r.Bind(StateActive, "close", handleCloseRun, "esc", "q")
}

func handleToggleRun(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.ToggleRun()
	m.syncRun()
	return m, nil, true
}

func handleSkipForward(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.SkipForward()
	m.syncRun()
	if m.run.Finished {
		m.Message = "Workout complete"
	}
	return m, nil, true
}

func handleSkipBackward(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.SkipBackward()
	m.syncRun()
	return m, nil, true
}

func handleCloseRun(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.engine.Close()
	m.syncRun()
	m.state = StateList
	return m, nil, true
}

// position converts a countdown counter into a 1-based position.
func position(total, remaining int64) int64 {
	return total - remaining + 1
}

func phaseProgress(run models.ActiveRun) float64 {
	if run.Finished {
		return 1
	}
	total := run.Profile.DurationFor(run.Phase)
	if total <= 0 {
		return 0
	}
	return float64(total-run.TimeRemaining) / float64(total)
}

func (m MainModel) renderActive() string {
	if !m.hasRun {
		return m.theme.Dim.Render("No active timer.")
	}
	run := m.run
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(run.Profile.Name))
	b.WriteString("\n\n")

	phaseStyle := m.theme.PhaseStyle(run.Phase)
	label := run.Phase.String()
	switch {
	case run.Finished:
		label = "Finished"
	case !run.IsRunning:
		label += " (paused)"
	}
	b.WriteString(phaseStyle.Render(label))
	b.WriteString("\n")

	countdown := m.theme.Countdown
	if c, ok := m.theme.Phases[run.Phase]; ok {
		countdown = countdown.BorderForeground(c)
	}
	b.WriteString(countdown.Render(util.FormatDuration(run.TimeRemaining)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(phaseProgress(run)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Set %d of %d   Round %d of %d",
		position(run.Profile.Sets, run.CurrentSet), run.Profile.Sets,
		position(run.Profile.Rounds, run.CurrentRound), run.Profile.Rounds))
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("Total " + util.FormatDuration(run.Profile.TotalDuration())))
	return b.String()
}
