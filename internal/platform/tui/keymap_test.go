package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jerry/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		quit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{"w", runeKey('w'), core.KeyUp, false},
		{"s", runeKey('s'), core.KeyDown, false},
		{"a", runeKey('a'), core.KeyLeft, false},
		{"d", runeKey('d'), core.KeyRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeyOther, false},
		{"x", runeKey('x'), core.KeyOther, false},
		{"q", runeKey('q'), core.KeyNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.want, tt.quit, got, quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)
	if !frame.Held(core.KeyUp) || !frame.Held(core.KeyLeft) {
		t.Error("expected both keys held in the same frame")
	}
	if frame.Closed {
		t.Fatal("expected no close signal yet")
	}

	km.MapKeyToFrame(runeKey('q'), &frame)
	if !frame.Closed {
		t.Error("expected q to raise the close signal")
	}
}
