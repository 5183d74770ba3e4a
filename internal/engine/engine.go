// Package engine drives an interval timer run through its phases.
package engine

import (
	"sync"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/models"
)

// Engine owns at most one active run. All operations are serialized; calls
// made without an active run are no-ops.
type Engine struct {
	mu          sync.Mutex
	run         *models.ActiveRun
	sound       SoundPlayer
	ticks       TickSource
	generation  uint64
	subscribers []chan Event
	shutdown    bool
	now         func() time.Time
}

// New creates an engine. Nil collaborators are replaced by no-ops.
func New(sound SoundPlayer, ticks TickSource) *Engine {
	if sound == nil {
		sound = nopSound{}
	}
	if ticks == nil {
		ticks = nopTicks{}
	}
	return &Engine{
		sound: sound,
		ticks: ticks,
		now:   time.Now,
	}
}

// Subscribe registers an observer channel. Events are dropped for a
// subscriber whose buffer is full.
func (e *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		close(ch)
		return ch
	}
	e.subscribers = append(e.subscribers, ch)
	return ch
}

// State returns a copy of the active run and whether one exists.
func (e *Engine) State() (models.ActiveRun, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == nil {
		return models.ActiveRun{}, false
	}
	return *e.run, true
}

// Open replaces any current run with a paused run at the start of WarmUp.
func (e *Engine) Open(profile models.TimerProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != nil && e.run.IsRunning {
		e.stopTicksLocked()
	}
	run := Start(profile)
	e.run = &run
	e.emitLocked(EventOpened)
	return nil
}

// Close discards the active run.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == nil {
		return
	}
	if e.run.IsRunning {
		e.stopTicksLocked()
	}
	e.run = nil
	e.emitLocked(EventClosed)
}

// ToggleRun flips between running and paused, starting or stopping the tick
// source to match.
func (e *Engine) ToggleRun() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == nil {
		return
	}
	e.run.IsRunning = !e.run.IsRunning
	if e.run.IsRunning {
		e.startTicksLocked()
	} else {
		e.stopTicksLocked()
	}
	e.emitLocked(EventToggled)
}

// Tick counts one second off a running timer. Reaching zero behaves exactly
// like SkipForward.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickLocked()
}

// SkipForward moves to the next phase.
func (e *Engine) SkipForward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == nil {
		return
	}
	e.forwardLocked()
}

// SkipBackward jumps to the start of the previous phase.
func (e *Engine) SkipBackward() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run == nil {
		return
	}
	next := Backward(*e.run)
	e.run = &next
	if next.IsRunning {
		e.sound.Play(next.Phase)
	}
	e.emitLocked(EventTransition)
}

// Shutdown stops the tick source and closes all subscriber channels.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.shutdown {
		return
	}
	if e.run != nil && e.run.IsRunning {
		e.stopTicksLocked()
	}
	e.shutdown = true
	for _, ch := range e.subscribers {
		close(ch)
	}
	e.subscribers = nil
}

func (e *Engine) tickLocked() {
	if e.run == nil || !e.run.IsRunning {
		return
	}
	e.run.TimeRemaining--
	if e.run.TimeRemaining <= 0 {
		e.forwardLocked()
		return
	}
	e.emitLocked(EventTick)
}

func (e *Engine) forwardLocked() {
	wasRunning := e.run.IsRunning
	next, ended := Forward(*e.run)
	e.run = &next
	if ended {
		if wasRunning {
			e.stopTicksLocked()
		}
		e.emitLocked(EventFinished)
		return
	}
	if next.IsRunning {
		e.sound.Play(next.Phase)
	}
	e.emitLocked(EventTransition)
}

func (e *Engine) startTicksLocked() {
	e.generation++
	gen := e.generation
	e.ticks.Start(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.generation {
			return
		}
		e.tickLocked()
	})
}

func (e *Engine) stopTicksLocked() {
	// Invalidate callbacks already queued behind the lock.
	e.generation++
	e.ticks.Stop()
}

func (e *Engine) emitLocked(eventType EventType) {
	event := Event{Type: eventType, Active: e.run != nil, At: e.now()}
	if e.run != nil {
		event.Run = *e.run
	}
	for _, ch := range e.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
