package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user preferences read from settings.yaml.
type Settings struct {
	DatabasePath string
	SoundMode    string
	// CueCommands maps a phase key (warm_up, low, high, rest, cooldown) to a
	// shell-free command line run when that phase starts.
	CueCommands  map[string]string
	TickInterval time.Duration
	Theme        string
}

type yamlSettings struct {
	DatabasePath  string            `yaml:"database_path"`
	Sound         string            `yaml:"sound"`
	CueCommands   map[string]string `yaml:"cue_commands"`
	TickMillisecs int               `yaml:"tick_interval_ms"`
	Theme         string            `yaml:"theme"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings(dataDir string) Settings {
	return Settings{
		DatabasePath: filepath.Join(dataDir, DBFileName),
		SoundMode:    SoundBell,
		CueCommands:  map[string]string{},
		TickInterval: TickInterval,
		Theme:        DefaultTheme,
	}
}

// LoadSettings reads preferences from path. A missing file yields defaults.
// The database path may be overridden by INTERVALTIMER_DB.
func LoadSettings(path, dataDir string) (Settings, error) {
	settings := DefaultSettings(dataDir)

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&settings)
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	if err := applyYamlSettings(&settings, fileData); err != nil {
		return settings, err
	}
	applyEnv(&settings)
	return settings, nil
}

// SaveSettings writes preferences to path, creating its directory.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	fileData := yamlSettings{
		DatabasePath:  settings.DatabasePath,
		Sound:         settings.SoundMode,
		CueCommands:   settings.CueCommands,
		TickMillisecs: int(settings.TickInterval / time.Millisecond),
		Theme:         settings.Theme,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) error {
	if strings.TrimSpace(fileData.DatabasePath) != "" {
		settings.DatabasePath = fileData.DatabasePath
	}
	switch mode := strings.ToLower(strings.TrimSpace(fileData.Sound)); mode {
	case "":
	case SoundBell, SoundCommand, SoundOff:
		settings.SoundMode = mode
	default:
		return fmt.Errorf("unknown sound mode %q", fileData.Sound)
	}
	for key, cmd := range fileData.CueCommands {
		settings.CueCommands[key] = cmd
	}
	if fileData.TickMillisecs > 0 {
		settings.TickInterval = time.Duration(fileData.TickMillisecs) * time.Millisecond
	}
	if theme := strings.TrimSpace(fileData.Theme); theme != "" {
		settings.Theme = theme
	}
	return nil
}

func applyEnv(settings *Settings) {
	if path := strings.TrimSpace(os.Getenv(EnvDatabasePath)); path != "" {
		settings.DatabasePath = path
	}
}
