package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reports false when it declines the key, letting later bindings
// for the same key run.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

// KeyBinding maps one or more keys to a handler. Bindings without Help are
// still active but stay out of the footer.
type KeyBinding struct {
	Keys    []string
	Help    string
	Handler KeyHandler
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (b KeyBinding) label() string {
	names := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}

// HandlerRegistry dispatches key presses by session state, in bind order.
type HandlerRegistry struct {
	byState map[SessionState][]KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{byState: make(map[SessionState][]KeyBinding)}
}

func (r *HandlerRegistry) Bind(state SessionState, help string, handler KeyHandler, keys ...string) {
	r.byState[state] = append(r.byState[state], KeyBinding{Keys: keys, Help: help, Handler: handler})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.byState[m.state] {
		if !b.matches(key) {
			continue
		}
		if next, cmd, handled := b.Handler(m, key); handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Bindings(state SessionState) []KeyBinding {
	return r.byState[state]
}

// HelpForState renders the footer line, e.g. "[space]play/pause | [esc/q]close".
func (r *HandlerRegistry) HelpForState(state SessionState) string {
	var parts []string
	for _, b := range r.byState[state] {
		if b.Help == "" {
			continue
		}
		parts = append(parts, "["+b.label()+"]"+b.Help)
	}
	return strings.Join(parts, " | ")
}
