package models

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is returned when a profile breaks the sets/rounds/duration invariant.
var ErrInvalidProfile = errors.New("invalid timer profile")

// Phase enumerates the segments of a timer run.
type Phase int

const (
	PhaseWarmUp Phase = iota
	PhaseLow
	PhaseHigh
	PhaseRest
	PhaseCooldown
)

// Phases lists every phase in run order.
var Phases = []Phase{PhaseWarmUp, PhaseLow, PhaseHigh, PhaseRest, PhaseCooldown}

var phaseLabels = map[Phase]string{
	PhaseWarmUp:   "Warm-Up",
	PhaseLow:      "Low Intensity",
	PhaseHigh:     "High Intensity",
	PhaseRest:     "Rest",
	PhaseCooldown: "Cooldown",
}

var phaseKeys = map[Phase]string{
	PhaseWarmUp:   "warm_up",
	PhaseLow:      "low",
	PhaseHigh:     "high",
	PhaseRest:     "rest",
	PhaseCooldown: "cooldown",
}

func (p Phase) String() string {
	if label, ok := phaseLabels[p]; ok {
		return label
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Key is the identifier used for the phase in settings files.
func (p Phase) Key() string {
	return phaseKeys[p]
}

// ParsePhase maps a settings key back to its phase.
func ParsePhase(key string) (Phase, bool) {
	for p, k := range phaseKeys {
		if k == key {
			return p, true
		}
	}
	return 0, false
}

// TimerProfile is a named interval configuration. Durations are whole seconds.
type TimerProfile struct {
	ID            string
	Name          string
	Description   *string
	WarmUp        int64
	LowIntensity  int64
	HighIntensity int64
	Rest          int64
	Cooldown      int64
	Sets          int64
	Rounds        int64
}

// Validate checks sets >= 1, rounds >= 1 and that no duration is negative.
func (p TimerProfile) Validate() error {
	if p.Sets < 1 {
		return fmt.Errorf("%w: sets must be at least 1, got %d", ErrInvalidProfile, p.Sets)
	}
	if p.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidProfile, p.Rounds)
	}
	for _, phase := range Phases {
		if d := p.DurationFor(phase); d < 0 {
			return fmt.Errorf("%w: %s duration is negative (%d)", ErrInvalidProfile, phase, d)
		}
	}
	return nil
}

// DurationFor returns the configured length of a phase.
func (p TimerProfile) DurationFor(phase Phase) int64 {
	switch phase {
	case PhaseWarmUp:
		return p.WarmUp
	case PhaseLow:
		return p.LowIntensity
	case PhaseHigh:
		return p.HighIntensity
	case PhaseRest:
		return p.Rest
	case PhaseCooldown:
		return p.Cooldown
	}
	return 0
}

// TotalDuration is the summary length shown next to a profile. A rest is
// counted for every round, including the last one.
func (p TimerProfile) TotalDuration() int64 {
	return p.WarmUp + ((p.LowIntensity+p.HighIntensity)*p.Sets+p.Rest)*p.Rounds + p.Cooldown
}

// ActiveRun is the live state of an opened profile. CurrentSet and
// CurrentRound count down towards 1.
type ActiveRun struct {
	Profile       TimerProfile
	Phase         Phase
	TimeRemaining int64
	CurrentSet    int64
	CurrentRound  int64
	IsRunning     bool
	Finished      bool
}
