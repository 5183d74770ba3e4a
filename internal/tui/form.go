package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldDescription
	fieldWarmUp
	fieldLow
	fieldHigh
	fieldRest
	fieldCooldown
	fieldSets
	fieldRounds
	fieldCount
)

// durationFields maps form rows to the phase they configure.
var durationFields = map[int]models.Phase{
	fieldWarmUp:   models.PhaseWarmUp,
	fieldLow:      models.PhaseLow,
	fieldHigh:     models.PhaseHigh,
	fieldRest:     models.PhaseRest,
	fieldCooldown: models.PhaseCooldown,
}

var errNameRequired = errors.New("name is required")

type formState struct {
	inputs    []textinput.Model
	focus     int
	editingID string
	err       error
}

func formLabel(field int) string {
	switch field {
	case fieldName:
		return "Name"
	case fieldDescription:
		return "Description"
	case fieldSets:
		return "Sets"
	case fieldRounds:
		return "Rounds"
	}
	return durationFields[field].String()
}

// newFormState prefills the form from profile, or from the defaults when
// profile is nil.
func newFormState(profile *models.TimerProfile) formState {
	values := models.TimerProfile{
		WarmUp:        config.DefaultWarmUp,
		LowIntensity:  config.DefaultLowIntensity,
		HighIntensity: config.DefaultHighIntensity,
		Rest:          config.DefaultRest,
		Cooldown:      config.DefaultCooldown,
		Sets:          config.DefaultSets,
		Rounds:        config.DefaultRounds,
	}
	f := formState{}
	if profile != nil {
		values = *profile
		f.editingID = profile.ID
	}

	f.inputs = make([]textinput.Model, fieldCount)
	for i := range f.inputs {
		ti := textinput.New()
		ti.Width = 30
		switch i {
		case fieldName:
			ti.Placeholder = "Profile name"
			ti.CharLimit = config.MaxNameLength
			ti.SetValue(values.Name)
		case fieldDescription:
			ti.Placeholder = "Optional"
			ti.CharLimit = config.MaxDescriptionLength
			ti.SetValue(util.Deref(values.Description))
		case fieldSets:
			ti.CharLimit = 2
			ti.SetValue(strconv.FormatInt(values.Sets, 10))
		case fieldRounds:
			ti.CharLimit = 2
			ti.SetValue(strconv.FormatInt(values.Rounds, 10))
		default:
			ti.Placeholder = "MM:SS"
			ti.CharLimit = 8
			ti.SetValue(util.FormatDuration(values.DurationFor(durationFields[i])))
		}
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f formState) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f *formState) setFocus(field int) {
	f.inputs[f.focus].Blur()
	f.focus = (field + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f formState) updateInput(msg tea.Msg) (formState, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// profile builds and validates the profile described by the form.
func (f formState) profile() (models.TimerProfile, error) {
	p := models.TimerProfile{ID: f.editingID, Name: f.value(fieldName)}
	if p.Name == "" {
		return p, errNameRequired
	}
	if desc := f.value(fieldDescription); desc != "" {
		p.Description = util.Ptr(desc)
	}

	for field := fieldWarmUp; field <= fieldCooldown; field++ {
		phase := durationFields[field]
		seconds, err := util.ParseDuration(f.value(field))
		if err != nil {
			return p, fmt.Errorf("%w: %s: %v", models.ErrInvalidProfile, phase, err)
		}
		if seconds > config.MaxPhaseDuration {
			return p, fmt.Errorf("%w: %s must not exceed %s", models.ErrInvalidProfile, phase, util.FormatDuration(config.MaxPhaseDuration))
		}
		switch phase {
		case models.PhaseWarmUp:
			p.WarmUp = seconds
		case models.PhaseLow:
			p.LowIntensity = seconds
		case models.PhaseHigh:
			p.HighIntensity = seconds
		case models.PhaseRest:
			p.Rest = seconds
		case models.PhaseCooldown:
			p.Cooldown = seconds
		}
	}

	var err error
	if p.Sets, err = parseCount(f.value(fieldSets), "sets", config.MaxSets); err != nil {
		return p, err
	}
	if p.Rounds, err = parseCount(f.value(fieldRounds), "rounds", config.MaxRounds); err != nil {
		return p, err
	}
	return p, p.Validate()
}

func parseCount(value, name string, max int64) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", models.ErrInvalidProfile, name)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%w: %s must be between 1 and %d", models.ErrInvalidProfile, name, max)
	}
	return n, nil
}

func (m MainModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateList
		m.form = formState{}
		return m, nil
	case "tab", "down":
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case "enter":
		if m.form.focus < fieldCount-1 {
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
		return m.submitForm()
	case "ctrl+s":
		return m.submitForm()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.updateInput(msg)
	return m, cmd
}

func (m MainModel) submitForm() (tea.Model, tea.Cmd) {
	profile, err := m.form.profile()
	if err != nil {
		m.form.err = err
		return m, nil
	}
	m.form.err = nil
	return m, saveProfileCmd(m.db, profile)
}

func (m MainModel) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.state == StateForm {
			m.form.err = msg.err
		} else {
			m.err = msg.err
		}
		return m, nil
	}
	m.state = StateList
	m.form = formState{}
	m.list.selectID = msg.profile.ID
	m.Message = fmt.Sprintf("Saved %q", msg.profile.Name)
	return m, loadProfilesCmd(m.db, m.list.query)
}

func (m MainModel) renderForm() string {
	var b strings.Builder
	title := "New Profile"
	if m.form.editingID != "" {
		title = "Edit Profile"
	}
	b.WriteString(m.theme.Header.Render(title))
	b.WriteString("\n\n")
	for i, input := range m.form.inputs {
		label := padLabel(formLabel(i), 16)
		if i == m.form.focus {
			label = m.theme.Focused.Render(label)
		} else {
			label = m.theme.Dim.Render(label)
		}
		b.WriteString(label + " " + input.View() + "\n")
	}
	if m.form.err != nil {
		b.WriteString("\n" + m.theme.Error.Render(m.form.err.Error()))
	}
	return strings.TrimRight(b.String(), "\n")
}
