package testutil

import (
	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
)

// ProfileBuilder provides fluent API for creating test profiles.
type ProfileBuilder struct {
	profile models.TimerProfile
}

// NewProfile starts from the form defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		profile: models.TimerProfile{
			Name:          "Test Profile",
			WarmUp:        config.DefaultWarmUp,
			LowIntensity:  config.DefaultLowIntensity,
			HighIntensity: config.DefaultHighIntensity,
			Rest:          config.DefaultRest,
			Cooldown:      config.DefaultCooldown,
			Sets:          config.DefaultSets,
			Rounds:        config.DefaultRounds,
		},
	}
}

func (b *ProfileBuilder) WithID(id string) *ProfileBuilder {
	b.profile.ID = id
	return b
}

func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

func (b *ProfileBuilder) WithDescription(d string) *ProfileBuilder {
	b.profile.Description = util.Ptr(d)
	return b
}

// WithDurations sets warm-up, low, high, rest and cooldown in that order.
func (b *ProfileBuilder) WithDurations(warmUp, low, high, rest, cooldown int64) *ProfileBuilder {
	b.profile.WarmUp = warmUp
	b.profile.LowIntensity = low
	b.profile.HighIntensity = high
	b.profile.Rest = rest
	b.profile.Cooldown = cooldown
	return b
}

func (b *ProfileBuilder) WithSets(n int64) *ProfileBuilder {
	b.profile.Sets = n
	return b
}

func (b *ProfileBuilder) WithRounds(n int64) *ProfileBuilder {
	b.profile.Rounds = n
	return b
}

func (b *ProfileBuilder) Build() models.TimerProfile {
	return b.profile
}
