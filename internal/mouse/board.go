// Package mouse implements the player actor and its cheese target on a
// grid laid over the terminal below the score line.
package mouse

import (
	"github.com/vovakirdan/jerry/internal/core"
)

const (
	CellW    = 2 // columns per grid cell
	CellH    = 1 // rows per grid cell
	HUDLines = 1 // rows reserved for the score overlay
)

// Board maps grid cells to screen rectangles.
type Board struct {
	Cols, Rows int
}

// NewBoard fits a grid into a terminal of the given size. The grid is
// never smaller than one cell.
func NewBoard(screenW, screenH int) Board {
	return Board{
		Cols: max(1, screenW/CellW),
		Rows: max(1, (screenH-HUDLines)/CellH),
	}
}

// Inside reports whether p lies on the board.
func (b Board) Inside(p core.Point) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// Clamp moves p onto the board.
func (b Board) Clamp(p core.Point) core.Point {
	return core.Point{
		X: core.Clamp(p.X, 0, b.Cols-1),
		Y: core.Clamp(p.Y, 0, b.Rows-1),
	}
}

// Center returns the middle cell.
func (b Board) Center() core.Point {
	return core.Point{X: b.Cols / 2, Y: b.Rows / 2}
}

// Rect returns the screen rectangle covered by cell p.
func (b Board) Rect(p core.Point) core.Rect {
	return core.NewRect(p.X*CellW, HUDLines+p.Y*CellH, CellW, CellH)
}
