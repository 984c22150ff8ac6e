package core

import "strings"

// Texture is a rectangular block of runes drawn onto a Screen as one unit.
// Sprites, backgrounds and rendered text are all textures.
type Texture struct {
	rows   [][]rune
	width  int
	Color  Color
	Opaque bool // when false, spaces let the cells underneath show through
}

// NewTexture builds a texture from text rows. The width is the longest row.
func NewTexture(rows []string, c Color) *Texture {
	t := &Texture{Color: c, rows: make([][]rune, len(rows))}
	for i, row := range rows {
		t.rows[i] = []rune(row)
		if len(t.rows[i]) > t.width {
			t.width = len(t.rows[i])
		}
	}
	return t
}

// Width returns the texture width in cells.
func (t *Texture) Width() int {
	if t == nil {
		return 0
	}
	return t.width
}

// Height returns the texture height in cells.
func (t *Texture) Height() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// At returns the rune at (x, y) of the texture, or space outside of it.
func (t *Texture) At(x, y int) rune {
	if t == nil || y < 0 || y >= len(t.rows) || x < 0 || x >= len(t.rows[y]) {
		return ' '
	}
	return t.rows[y][x]
}

// String returns the texture rows joined by newlines.
func (t *Texture) String() string {
	if t == nil {
		return ""
	}
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
