package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	"github.com/google/uuid"
)

const exportVersion = 1

type ExportProfile struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	WarmUp        int64   `json:"warm_up"`
	LowIntensity  int64   `json:"low_intensity"`
	HighIntensity int64   `json:"high_intensity"`
	Rest          int64   `json:"rest"`
	Cooldown      int64   `json:"cooldown"`
	Sets          int64   `json:"sets"`
	Rounds        int64   `json:"rounds"`
}

type ProfileExport struct {
	Version  int             `json:"version"`
	Profiles []ExportProfile `json:"profiles"`
}

func toExportProfile(p models.TimerProfile) ExportProfile {
	return ExportProfile{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		WarmUp:        p.WarmUp,
		LowIntensity:  p.LowIntensity,
		HighIntensity: p.HighIntensity,
		Rest:          p.Rest,
		Cooldown:      p.Cooldown,
		Sets:          p.Sets,
		Rounds:        p.Rounds,
	}
}

func (e ExportProfile) profile() models.TimerProfile {
	return models.TimerProfile{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		WarmUp:        e.WarmUp,
		LowIntensity:  e.LowIntensity,
		HighIntensity: e.HighIntensity,
		Rest:          e.Rest,
		Cooldown:      e.Cooldown,
		Sets:          e.Sets,
		Rounds:        e.Rounds,
	}
}

// ExportProfiles serializes every stored profile as indented JSON.
func (d *Database) ExportProfiles(ctx context.Context) ([]byte, error) {
	profiles, err := d.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	export := ProfileExport{Version: exportVersion, Profiles: make([]ExportProfile, 0, len(profiles))}
	for _, p := range profiles {
		export.Profiles = append(export.Profiles, toExportProfile(p))
	}
	return json.MarshalIndent(export, "", "  ")
}

// ImportProfiles loads exported profiles. Existing ids are overwritten and
// entries without an id get a new one. Nothing is written unless every
// profile is valid.
func (d *Database) ImportProfiles(ctx context.Context, payload []byte) (int, error) {
	var export ProfileExport
	if err := json.Unmarshal(payload, &export); err != nil {
		return 0, fmt.Errorf("import profiles: %w", err)
	}
	if export.Version > exportVersion {
		return 0, fmt.Errorf("import profiles: unsupported version %d", export.Version)
	}

	for i, entry := range export.Profiles {
		if err := entry.profile().Validate(); err != nil {
			return 0, fmt.Errorf("import profile %d (%q): %w", i, entry.Name, err)
		}
	}

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range export.Profiles {
			p := entry.profile()
			if strings.TrimSpace(p.ID) == "" {
				p.ID = uuid.NewString()
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO profiles
				(id, name, description, warm_up, low_intensity, high_intensity, rest, cooldown, sets, rounds)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, nullableString(util.Deref(p.Description)),
				p.WarmUp, p.LowIntensity, p.HighIntensity, p.Rest, p.Cooldown,
				p.Sets, p.Rounds,
			); err != nil {
				return wrapErr(EntityProfile, "import", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(export.Profiles), nil
}
