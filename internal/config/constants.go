package config

import "time"

// Application settings.
const (
	AppName          = "intervaltimer"
	DBFileName       = "profiles.db"
	SettingsFileName = "settings.yaml"
	LogFileName      = "intervaltimer.log"
)

// Environment overrides.
const (
	EnvDatabasePath = "INTERVALTIMER_DB"
	EnvSettingsPath = "INTERVALTIMER_CONFIG"
)

// TickInterval is the resolution of the running countdown.
const TickInterval = time.Second

// Defaults for a new profile, in seconds.
const (
	DefaultWarmUp        = 300
	DefaultLowIntensity  = 30
	DefaultHighIntensity = 60
	DefaultRest          = 60
	DefaultCooldown      = 300
	DefaultSets          = 4
	DefaultRounds        = 2
)

// Input constraints.
const (
	MaxSets   = 99
	MaxRounds = 99

	// MaxPhaseDuration is 23:59:59.
	MaxPhaseDuration = 24*60*60 - 1
)

// Sound modes.
const (
	SoundBell    = "bell"
	SoundCommand = "command"
	SoundOff     = "off"
)

// Setting keys stored in the database.
const (
	SettingLastProfile = "last_profile_id"
)
