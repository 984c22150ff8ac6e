package session

import "github.com/vovakirdan/jerry/internal/core"

// directionChecks is walked in order and the last held key wins, so the
// effective priority is Up > Down > Left > Right.
var directionChecks = []struct {
	key core.Key
	dir core.Direction
}{
	{core.KeyRight, core.East},
	{core.KeyLeft, core.West},
	{core.KeyDown, core.South},
	{core.KeyUp, core.North},
}

// heldDirection resolves the held directional keys to one heading.
// ok is false when no directional key is held.
func heldDirection(in core.InputFrame) (dir core.Direction, ok bool) {
	for _, c := range directionChecks {
		if in.Held(c.key) {
			dir, ok = c.dir, true
		}
	}
	return dir, ok
}

// ResolveDirection returns the heading for this frame: the held key with
// the highest priority, or current when none is held.
func ResolveDirection(current core.Direction, in core.InputFrame) core.Direction {
	if dir, ok := heldDirection(in); ok {
		return dir
	}
	return current
}
