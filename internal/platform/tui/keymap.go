package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jerry/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to steer,
// Enter to start, q or ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game keys.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey returns the game key for msg and whether it is the quit request.
// Unbound keys map to KeyOther so "press any key" sees them.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight, false
	case key.Matches(msg, km.keys.Start):
		return core.KeyEnter, false
	}
	return core.KeyOther, false
}

// MapKeyToFrame records msg in the frame. The quit request sets the
// close signal.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	k, isQuit := km.MapKey(msg)
	if isQuit {
		frame.Closed = true
		return
	}
	frame.Press(k)
}
