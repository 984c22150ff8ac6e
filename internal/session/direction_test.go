package session

import (
	"testing"

	"github.com/vovakirdan/jerry/internal/core"
)

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name    string
		current core.Direction
		keys    []core.Key
		want    core.Direction
	}{
		{"none held keeps heading", core.West, nil, core.West},
		{"up", core.East, []core.Key{core.KeyUp}, core.North},
		{"down", core.East, []core.Key{core.KeyDown}, core.South},
		{"left", core.East, []core.Key{core.KeyLeft}, core.West},
		{"right", core.West, []core.Key{core.KeyRight}, core.East},
		{"up and left", core.East, []core.Key{core.KeyUp, core.KeyLeft}, core.North},
		{"down and right", core.West, []core.Key{core.KeyDown, core.KeyRight}, core.South},
		{"left and right", core.North, []core.Key{core.KeyLeft, core.KeyRight}, core.West},
		{"all four", core.South, []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}, core.North},
		{"non directional", core.South, []core.Key{core.KeyEnter, core.KeyOther}, core.South},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDirection(tt.current, pressed(tt.keys...))
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
