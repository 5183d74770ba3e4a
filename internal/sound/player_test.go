package sound

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/models"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBellWritesBell(t *testing.T) {
	var out syncBuffer
	p := NewBell(&out)
	p.Play(models.PhaseHigh)
	deadline := time.Now().Add(2 * time.Second)
	for out.String() == "" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	p.Close()
	if out.String() != "\a" {
		t.Fatalf("expected a single bell, got %q", out.String())
	}
}

func TestPlayDoesNotBlockWhenQueueFull(t *testing.T) {
	release := make(chan struct{})
	p := newPlayer(func(ctx context.Context, _ models.Phase) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	})
	done := make(chan struct{})
	go func() {
		for i := 0; i < queueSize*4; i++ {
			p.Play(models.PhaseLow)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Play blocked on a full queue")
	}
	close(release)
	p.Close()
}

func TestPlayAfterCloseIsIgnored(t *testing.T) {
	p := NewNop()
	p.Close()
	p.Close()
	p.Play(models.PhaseRest)
}

func TestParseCommands(t *testing.T) {
	commands, err := ParseCommands(map[string]string{
		"high":    "paplay /usr/share/sounds/high.oga",
		"rest":    "   ",
		"warm_up": "aplay warm.wav",
	})
	if err != nil {
		t.Fatalf("ParseCommands failed: %v", err)
	}
	if got := commands[models.PhaseHigh]; len(got) != 2 || got[0] != "paplay" {
		t.Fatalf("high command = %v", got)
	}
	if _, ok := commands[models.PhaseRest]; ok {
		t.Fatalf("blank command should be skipped")
	}
	if _, err := ParseCommands(map[string]string{"sprint": "x"}); err == nil {
		t.Fatalf("expected error for unknown phase")
	}
}

func TestFromSettings(t *testing.T) {
	settings := config.DefaultSettings(t.TempDir())
	for _, mode := range []string{config.SoundBell, config.SoundOff, config.SoundCommand} {
		settings.SoundMode = mode
		p, err := FromSettings(settings, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("FromSettings(%s) failed: %v", mode, err)
		}
		p.Close()
	}
	settings.SoundMode = "trumpet"
	if _, err := FromSettings(settings, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
