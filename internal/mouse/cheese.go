package mouse

import (
	"math/rand"

	"github.com/vovakirdan/jerry/internal/core"
)

// offBoard parks the cheese when no cell is left for it.
var offBoard = core.Point{X: -1, Y: -1}

// Cheese is the target. It respawns on a random cell the mouse does not
// occupy.
type Cheese struct {
	board Board
	rng   *rand.Rand
	pos   core.Point
	mouse *Mouse
}

// NewCheese places the cheese at start, or somewhere free if the mouse
// already sits there.
func NewCheese(board Board, start core.Point, m *Mouse, seed int64) *Cheese {
	c := &Cheese{
		board: board,
		rng:   rand.New(rand.NewSource(seed)),
		pos:   board.Clamp(start),
		mouse: m,
	}
	if m.Occupies(c.pos) {
		c.Respawn()
	}
	return c
}

// Respawn moves the cheese to a random free cell. With no free cell left
// it is parked off the board where nothing can reach it.
func (c *Cheese) Respawn() {
	var free []core.Point
	for y := 0; y < c.board.Rows; y++ {
		for x := 0; x < c.board.Cols; x++ {
			p := core.Point{X: x, Y: y}
			if p != c.pos && !c.mouse.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		c.pos = offBoard
		return
	}
	c.pos = free[c.rng.Intn(len(free))]
}

// Pos returns the grid cell of the cheese.
func (c *Cheese) Pos() core.Point {
	return c.pos
}

// Placed reports whether the cheese sits on the board.
func (c *Cheese) Placed() bool {
	return c.board.Inside(c.pos)
}

// Rect returns the screen rectangle of the cheese. A parked cheese lies
// above and left of the screen, so it neither intersects the mouse nor
// gets drawn.
func (c *Cheese) Rect() core.Rect {
	if !c.Placed() {
		return core.NewRect(-CellW, -CellH, CellW, CellH)
	}
	return c.board.Rect(c.pos)
}
