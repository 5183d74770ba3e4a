package database

import (
	"context"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
)

// ProfileRepository defines timer profile storage.
type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]models.TimerProfile, error)
	SearchProfiles(ctx context.Context, query util.SearchQuery) ([]models.TimerProfile, error)
	GetProfile(ctx context.Context, id string) (models.TimerProfile, error)
	CreateProfile(ctx context.Context, profile models.TimerProfile) (models.TimerProfile, error)
	UpdateProfile(ctx context.Context, profile models.TimerProfile) error
	DeleteProfile(ctx context.Context, id string) error
}

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	ProfileRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
