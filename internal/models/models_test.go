package models

import (
	"errors"
	"testing"
)

func sampleProfile() TimerProfile {
	return TimerProfile{
		Name:          "Test",
		WarmUp:        300,
		LowIntensity:  10,
		HighIntensity: 20,
		Rest:          50,
		Cooldown:      300,
		Sets:          4,
		Rounds:        2,
	}
}

func TestPhaseLabels(t *testing.T) {
	want := map[Phase]string{
		PhaseWarmUp:   "Warm-Up",
		PhaseLow:      "Low Intensity",
		PhaseHigh:     "High Intensity",
		PhaseRest:     "Rest",
		PhaseCooldown: "Cooldown",
	}
	for phase, label := range want {
		if phase.String() != label {
			t.Fatalf("%d.String() = %q, want %q", int(phase), phase.String(), label)
		}
	}
	if Phase(42).String() != "Phase(42)" {
		t.Fatalf("unexpected label for unknown phase: %q", Phase(42).String())
	}
}

func TestParsePhaseRoundTrip(t *testing.T) {
	for _, phase := range Phases {
		got, ok := ParsePhase(phase.Key())
		if !ok || got != phase {
			t.Fatalf("ParsePhase(%q) = %v, %v", phase.Key(), got, ok)
		}
	}
	if _, ok := ParsePhase("sprint"); ok {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestValidate(t *testing.T) {
	if err := sampleProfile().Validate(); err != nil {
		t.Fatalf("Validate returned %v for a valid profile", err)
	}

	cases := map[string]func(p *TimerProfile){
		"zero sets":         func(p *TimerProfile) { p.Sets = 0 },
		"zero rounds":       func(p *TimerProfile) { p.Rounds = 0 },
		"negative warm-up":  func(p *TimerProfile) { p.WarmUp = -1 },
		"negative low":      func(p *TimerProfile) { p.LowIntensity = -5 },
		"negative cooldown": func(p *TimerProfile) { p.Cooldown = -1 },
	}
	for name, mutate := range cases {
		p := sampleProfile()
		mutate(&p)
		if err := p.Validate(); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("%s: expected ErrInvalidProfile, got %v", name, err)
		}
	}

	zero := sampleProfile()
	zero.WarmUp, zero.Rest, zero.Cooldown = 0, 0, 0
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero durations should be valid, got %v", err)
	}
}

func TestDurationFor(t *testing.T) {
	p := sampleProfile()
	want := map[Phase]int64{
		PhaseWarmUp:   300,
		PhaseLow:      10,
		PhaseHigh:     20,
		PhaseRest:     50,
		PhaseCooldown: 300,
	}
	for phase, d := range want {
		if got := p.DurationFor(phase); got != d {
			t.Fatalf("DurationFor(%s) = %d, want %d", phase, got, d)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	p := sampleProfile()
	// 300 + ((10+20)*4 + 50)*2 + 300
	if got := p.TotalDuration(); got != 940 {
		t.Fatalf("TotalDuration = %d, want 940", got)
	}
}
