package tui

import (
	"context"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	ListProfiles(ctx context.Context) ([]models.TimerProfile, error)
	SearchProfiles(ctx context.Context, query util.SearchQuery) ([]models.TimerProfile, error)
	GetProfile(ctx context.Context, id string) (models.TimerProfile, error)
	CreateProfile(ctx context.Context, profile models.TimerProfile) (models.TimerProfile, error)
	UpdateProfile(ctx context.Context, profile models.TimerProfile) error
	DeleteProfile(ctx context.Context, id string) error
}
