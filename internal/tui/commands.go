package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/engine"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/report"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type profilesLoadedMsg struct {
	profiles      []models.TimerProfile
	lastProfileID string
	err           error
}

type profileSavedMsg struct {
	profile models.TimerProfile
	err     error
}

type profileDeletedMsg struct {
	id  string
	err error
}

type reportDoneMsg struct {
	path string
	err  error
}

type engineEventMsg engine.Event

type engineClosedMsg struct{}

func loadProfilesCmd(db Database, query util.SearchQuery) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			profiles []models.TimerProfile
			err      error
		)
		if query.Empty() {
			profiles, err = db.ListProfiles(ctx)
		} else {
			profiles, err = db.SearchProfiles(ctx, query)
		}
		last, _ := db.GetSetting(ctx, config.SettingLastProfile)
		return profilesLoadedMsg{profiles: profiles, lastProfileID: last, err: err}
	}
}

func saveProfileCmd(db Database, profile models.TimerProfile) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if profile.ID == "" {
			created, err := db.CreateProfile(ctx, profile)
			return profileSavedMsg{profile: created, err: err}
		}
		err := db.UpdateProfile(ctx, profile)
		return profileSavedMsg{profile: profile, err: err}
	}
}

func deleteProfileCmd(db Database, id string) tea.Cmd {
	return func() tea.Msg {
		return profileDeletedMsg{id: id, err: db.DeleteProfile(context.Background(), id)}
	}
}

func rememberProfileCmd(db Database, id string) tea.Cmd {
	return func() tea.Msg {
		util.LogError("remember last profile", db.SetSetting(context.Background(), config.SettingLastProfile, id))
		return nil
	}
}

func reportCmd(profiles []models.TimerProfile, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := report.GenerateCatalogue(profiles, dir, now)
		return reportDoneMsg{path: path, err: err}
	}
}

// waitForEvent blocks until the engine publishes the next event.
func waitForEvent(events <-chan engine.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg(ev)
	}
}
