package tui

import (
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Countdown lipgloss.Style
	Phases    map[models.Phase]lipgloss.Color
}

// PhaseStyle renders text in the colour assigned to a phase.
func (t Theme) PhaseStyle(phase models.Phase) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := t.Phases[phase]; ok {
		style = style.Foreground(c)
	}
	return style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Countdown: lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Phases: map[models.Phase]lipgloss.Color{
			models.PhaseWarmUp:   lipgloss.Color("214"), // orange
			models.PhaseLow:      lipgloss.Color("33"),  // blue
			models.PhaseHigh:     lipgloss.Color("196"), // red
			models.PhaseRest:     lipgloss.Color("34"),  // green
			models.PhaseCooldown: lipgloss.Color("44"),  // cyan
		},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Countdown: lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Phases: map[models.Phase]lipgloss.Color{
			models.PhaseWarmUp:   lipgloss.Color("215"),
			models.PhaseLow:      lipgloss.Color("117"),
			models.PhaseHigh:     lipgloss.Color("210"),
			models.PhaseRest:     lipgloss.Color("120"),
			models.PhaseCooldown: lipgloss.Color("141"),
		},
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
