package mouse

import (
	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// NewWorld creates the mouse at the board center and the cheese at its
// configured start cell.
func NewWorld(rc core.RuntimeConfig, cfg config.GameplayConfig) (core.Actor, core.Target) {
	board := NewBoard(rc.ScreenW, rc.ScreenH)
	m := NewMouse(board, board.Center(), cfg.MoveEvery)
	start := core.Point{X: cfg.CheeseStart.X, Y: cfg.CheeseStart.Y}
	return m, NewCheese(board, start, m, rc.Seed)
}
