// Package sound plays phase cues without blocking the caller.
package sound

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
)

const (
	queueSize      = 4
	commandTimeout = 10 * time.Second
)

// Player queues cues for a single background worker. Cues arriving while the
// queue is full are dropped.
type Player struct {
	queue     chan models.Phase
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	play      func(ctx context.Context, phase models.Phase) error
}

func newPlayer(play func(ctx context.Context, phase models.Phase) error) *Player {
	p := &Player{
		queue: make(chan models.Phase, queueSize),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
		play:  play,
	}
	go p.loop()
	return p
}

// NewBell rings the terminal bell on w for every cue.
func NewBell(w io.Writer) *Player {
	return newPlayer(func(_ context.Context, _ models.Phase) error {
		_, err := io.WriteString(w, "\a")
		return err
	})
}

// NewCommand runs the command configured for a phase. Phases without a
// command are silent.
func NewCommand(commands map[models.Phase][]string) *Player {
	return newPlayer(func(ctx context.Context, phase models.Phase) error {
		argv, ok := commands[phase]
		if !ok || len(argv) == 0 {
			return nil
		}
		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		return exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
	})
}

// NewNop discards every cue.
func NewNop() *Player {
	return newPlayer(func(context.Context, models.Phase) error { return nil })
}

// FromSettings builds the player selected by the sound mode.
func FromSettings(settings config.Settings, w io.Writer) (*Player, error) {
	switch settings.SoundMode {
	case config.SoundOff:
		return NewNop(), nil
	case config.SoundCommand:
		commands, err := ParseCommands(settings.CueCommands)
		if err != nil {
			return nil, err
		}
		return NewCommand(commands), nil
	case config.SoundBell, "":
		return NewBell(w), nil
	}
	return nil, fmt.Errorf("unknown sound mode %q", settings.SoundMode)
}

// ParseCommands maps phase keys to argv slices.
func ParseCommands(raw map[string]string) (map[models.Phase][]string, error) {
	commands := make(map[models.Phase][]string, len(raw))
	for key, line := range raw {
		phase, ok := models.ParsePhase(strings.TrimSpace(key))
		if !ok {
			return nil, fmt.Errorf("cue command for unknown phase %q", key)
		}
		if argv := strings.Fields(line); len(argv) > 0 {
			commands[phase] = argv
		}
	}
	return commands, nil
}

// Play enqueues a cue and returns immediately.
func (p *Player) Play(phase models.Phase) {
	select {
	case <-p.stop:
		return
	default:
	}
	select {
	case p.queue <- phase:
	default:
	}
}

// Close stops the worker and waits for the cue in progress to finish.
func (p *Player) Close() {
	p.closeOnce.Do(func() {
		close(p.stop)
	})
	<-p.done
}

func (p *Player) loop() {
	defer close(p.done)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-p.stop
		cancel()
	}()
	for {
		select {
		case <-p.stop:
			return
		case phase := <-p.queue:
			util.LogError(fmt.Sprintf("play %s cue", phase), p.play(ctx, phase))
		}
	}
}
