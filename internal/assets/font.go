package assets

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/jerry/internal/core"
)

// fontFile is the YAML layout of a glyph font.
type fontFile struct {
	Name      string              `yaml:"name"`
	LargeFrom int                 `yaml:"large_from"` // sizes from here on use glyphs
	Height    int                 `yaml:"height"`
	Spacing   int                 `yaml:"spacing"`
	Glyphs    map[string][]string `yaml:"glyphs"`
}

// GlyphFont renders text either as plain characters or, at large sizes,
// as banner glyphs several rows tall.
type GlyphFont struct {
	name    string
	size    int
	large   bool
	height  int
	spacing int
	glyphs  map[rune][]string
	widths  map[rune]int
	onClose func()
	closed  bool
}

// ParseFont reads a glyph font for the given point size.
func ParseFont(data []byte, size int) (*GlyphFont, error) {
	var ff fontFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}
	if ff.Height <= 0 {
		return nil, errors.New("font height must be positive")
	}

	f := &GlyphFont{
		name:    ff.Name,
		size:    size,
		large:   ff.LargeFrom > 0 && size >= ff.LargeFrom,
		height:  ff.Height,
		spacing: max(0, ff.Spacing),
		glyphs:  make(map[rune][]string, len(ff.Glyphs)),
		widths:  make(map[rune]int, len(ff.Glyphs)),
	}
	for key, rows := range ff.Glyphs {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("glyph key %q is not a single character", key)
		}
		if len(rows) > ff.Height {
			return nil, fmt.Errorf("glyph %q has %d rows, height is %d", key, len(rows), ff.Height)
		}
		w := 0
		for _, row := range rows {
			w = max(w, lipgloss.Width(row))
		}
		f.glyphs[runes[0]] = rows
		f.widths[runes[0]] = w
	}
	return f, nil
}

// Name returns the font name.
func (f *GlyphFont) Name() string {
	return f.name
}

// Large reports whether the font renders banner glyphs.
func (f *GlyphFont) Large() bool {
	return f.large
}

// RenderText renders text into an opaque texture.
func (f *GlyphFont) RenderText(text string, c core.Color) *core.Texture {
	var t *core.Texture
	if f.large {
		t = core.NewTexture(f.banner(text), c)
	} else {
		t = core.NewTexture([]string{text}, c)
	}
	t.Opaque = true
	return t
}

func (f *GlyphFont) banner(text string) []string {
	rows := make([]strings.Builder, f.height)
	for i, r := range []rune(text) {
		glyph, w := f.glyph(r)
		for y := range rows {
			if i > 0 {
				rows[y].WriteString(strings.Repeat(" ", f.spacing))
			}
			line := ""
			if y < len(glyph) {
				line = glyph[y]
			}
			// Pad short glyph rows so the next glyph lines up
			rows[y].WriteString(line)
			rows[y].WriteString(strings.Repeat(" ", w-lipgloss.Width(line)))
		}
	}

	out := make([]string, f.height)
	for y := range rows {
		out[y] = rows[y].String()
	}
	return out
}

// glyph looks r up, trying its upper case form and then '?'. Unknown
// characters render as blanks.
func (f *GlyphFont) glyph(r rune) ([]string, int) {
	for _, k := range []rune{r, unicode.ToUpper(r), '?'} {
		if g, ok := f.glyphs[k]; ok {
			return g, f.widths[k]
		}
	}
	return nil, 3
}

// Close releases the font. Closing twice is harmless.
func (f *GlyphFont) Close() {
	if f.closed {
		return
	}
	f.closed = true
	if f.onClose != nil {
		f.onClose()
	}
}
