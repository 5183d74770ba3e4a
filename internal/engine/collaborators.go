package engine

import "github.com/akyairhashvil/intervaltimer/internal/models"

// SoundPlayer plays the cue for a phase. Play must return without waiting for
// playback to finish.
//
//go:generate mockgen -source=collaborators.go -destination=mock_collaborators_test.go -package=engine
type SoundPlayer interface {
	Play(phase models.Phase)
}

// TickSource calls onTick at a fixed interval between Start and Stop.
// onTick must not be called from inside Start, and Stop must not wait for an
// in-flight callback.
type TickSource interface {
	Start(onTick func())
	Stop()
}

type nopSound struct{}

func (nopSound) Play(models.Phase) {}

type nopTicks struct{}

func (nopTicks) Start(func()) {}
func (nopTicks) Stop()        {}
