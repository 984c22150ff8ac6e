// Package assets loads the textures and fonts the game draws with.
// Textures are ASCII-art text files; fonts are YAML glyph tables.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vovakirdan/jerry/internal/core"
)

// LoadError reports an asset that could not be acquired.
type LoadError struct {
	Kind string // "texture", "font", "sound"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Library resolves asset paths against a root directory and keeps track
// of the handles it gave out.
type Library struct {
	dir string

	mu    sync.Mutex
	live  map[*core.Texture]string
	fonts int
}

// NewLibrary creates a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:  dir,
		live: make(map[*core.Texture]string),
	}
}

// Resolve returns the file a relative asset path refers to.
func (l *Library) Resolve(path string) string {
	if filepath.IsAbs(path) || l.dir == "" {
		return path
	}
	return filepath.Join(l.dir, path)
}

// LoadTexture reads a texture file.
func (l *Library) LoadTexture(path string) (*core.Texture, error) {
	full := l.Resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, &LoadError{Kind: "texture", Path: full, Err: err}
	}
	t, err := ParseTexture(data)
	if err != nil {
		return nil, &LoadError{Kind: "texture", Path: full, Err: err}
	}

	l.mu.Lock()
	l.live[t] = full
	l.mu.Unlock()
	return t, nil
}

// ReleaseTexture gives a texture handle back.
func (l *Library) ReleaseTexture(t *core.Texture) {
	l.mu.Lock()
	delete(l.live, t)
	l.mu.Unlock()
}

// OpenFont reads a glyph font and sizes it.
func (l *Library) OpenFont(path string, size int) (core.Font, error) {
	full := l.Resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, &LoadError{Kind: "font", Path: full, Err: err}
	}
	font, err := ParseFont(data, size)
	if err != nil {
		return nil, &LoadError{Kind: "font", Path: full, Err: err}
	}

	l.mu.Lock()
	l.fonts++
	l.mu.Unlock()
	font.onClose = l.fontClosed
	return font, nil
}

func (l *Library) fontClosed() {
	l.mu.Lock()
	l.fonts--
	l.mu.Unlock()
}

// Live returns the number of textures and fonts not yet released.
func (l *Library) Live() (textures, fonts int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live), l.fonts
}
