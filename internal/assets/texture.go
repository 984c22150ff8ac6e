package assets

import (
	"errors"
	"strings"

	"github.com/vovakirdan/jerry/internal/core"
)

const colorHeader = "color:"

// ParseTexture reads ASCII art. An optional first line "color: <name>"
// sets the color; trailing blank lines are dropped. Spaces stay
// transparent when drawn.
func ParseTexture(data []byte) (*core.Texture, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	color := core.ColorDefault
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), colorHeader) {
		name := strings.TrimPrefix(strings.TrimSpace(lines[0]), colorHeader)
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, errors.New("unknown color " + strings.TrimSpace(name))
		}
		color = c
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("empty texture")
	}
	return core.NewTexture(lines, color), nil
}
