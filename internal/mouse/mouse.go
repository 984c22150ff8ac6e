package mouse

import (
	"github.com/vovakirdan/jerry/internal/core"
)

// Mouse is the player actor: a head followed by the body it grew.
// It advances one cell every moveEvery frames.
type Mouse struct {
	board     Board
	segments  []core.Point // head at index 0
	direction core.Direction
	nextDir   core.Direction // applied on the next step
	growing   bool           // keep the tail on the next step
	moveEvery int
	ticker    int
	crashed   bool
}

// NewMouse places a one-cell mouse at start heading East.
func NewMouse(board Board, start core.Point, moveEvery int) *Mouse {
	return &Mouse{
		board:     board,
		segments:  []core.Point{board.Clamp(start)},
		direction: core.East,
		nextDir:   core.East,
		moveEvery: max(1, moveEvery),
	}
}

// Turn buffers a heading for the next step. Reversing onto the body is
// ignored once the mouse has grown.
func (m *Mouse) Turn(d core.Direction) {
	if len(m.segments) > 1 && d == m.direction.Opposite() {
		return
	}
	m.nextDir = d
}

// Heading returns the direction the mouse will take on its next step.
func (m *Mouse) Heading() core.Direction {
	return m.nextDir
}

// Move counts one frame and steps the mouse when its interval elapsed.
func (m *Mouse) Move() {
	if m.crashed {
		return
	}
	m.ticker++
	if m.ticker < m.moveEvery {
		return
	}
	m.ticker = 0
	m.step()
}

func (m *Mouse) step() {
	m.direction = m.nextDir
	head := m.segments[0].Add(m.direction.Delta())

	if !m.board.Inside(head) {
		m.crashed = true
		return
	}

	// The tail cell is vacated by this step unless the mouse grows.
	checkLen := len(m.segments)
	if !m.growing {
		checkLen--
	}
	for i := range checkLen {
		if m.segments[i] == head {
			m.crashed = true
			return
		}
	}

	// Push the new head, then drop the tail unless growing
	m.segments = append([]core.Point{head}, m.segments...)
	if m.growing {
		m.growing = false
	} else {
		m.segments = m.segments[:len(m.segments)-1]
	}
}

// Grow makes the next step keep the tail.
func (m *Mouse) Grow() {
	m.growing = true
}

// CanReach reports whether the head overlaps the target.
func (m *Mouse) CanReach(t core.Target) bool {
	return m.Rect().Intersects(t.Rect())
}

// Rect returns the screen rectangle of the head.
func (m *Mouse) Rect() core.Rect {
	return m.board.Rect(m.segments[0])
}

// Tail returns the screen rectangles of the body, nearest the head first.
func (m *Mouse) Tail() []core.Rect {
	rects := make([]core.Rect, 0, len(m.segments)-1)
	for _, p := range m.segments[1:] {
		rects = append(rects, m.board.Rect(p))
	}
	return rects
}

// Crashed reports a step off the board or into the body.
func (m *Mouse) Crashed() bool {
	return m.crashed
}

// Len returns the number of cells the mouse occupies.
func (m *Mouse) Len() int {
	return len(m.segments)
}

// Occupies reports whether any segment covers p.
func (m *Mouse) Occupies(p core.Point) bool {
	for _, seg := range m.segments {
		if seg == p {
			return true
		}
	}
	return false
}
