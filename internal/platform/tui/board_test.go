package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jerry/internal/storage"
)

func TestBoardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, s := range []int{3, 8, 5} {
		if _, err := store.SaveScore("jerry", s); err != nil {
			t.Fatal(err)
		}
	}

	m := NewBoardModel(store, "jerry", 80, 24)
	if m.ActiveView() != ViewTop || m.runs[0].Score != 8 {
		t.Fatalf("expected the top view led by 8, got %v %+v", m.ActiveView(), m.runs)
	}
	if !strings.Contains(m.View(), "3 runs") {
		t.Error("expected the stats line")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(BoardModel)
	if m.ActiveView() != ViewRecent || m.runs[0].Score != 5 {
		t.Errorf("expected the recent view led by 5, got %v %+v", m.ActiveView(), m.runs)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(BoardModel)
	if cmd == nil || m.View() != "" {
		t.Error("expected q to quit the board")
	}
}

func TestBoardWithoutRuns(t *testing.T) {
	m := NewBoardModel(nil, "jerry", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected the empty message")
	}
}
