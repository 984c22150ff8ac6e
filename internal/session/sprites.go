package session

import (
	"fmt"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// spriteCache keeps one long-lived texture per heading. Textures are
// loaded once and released together at phase teardown.
type spriteCache struct {
	textures Textures
	paths    map[core.Direction]string
	loaded   map[core.Direction]*core.Texture
}

func newSpriteCache(textures Textures, sprites config.MouseSprites) *spriteCache {
	return &spriteCache{
		textures: textures,
		paths: map[core.Direction]string{
			core.North: sprites.North,
			core.South: sprites.South,
			core.East:  sprites.East,
			core.West:  sprites.West,
		},
		loaded: make(map[core.Direction]*core.Texture, 4),
	}
}

// Get returns the sprite for d, loading it on first use.
func (c *spriteCache) Get(d core.Direction) (*core.Texture, error) {
	if t, ok := c.loaded[d]; ok {
		return t, nil
	}
	path, ok := c.paths[d]
	if !ok {
		return nil, fmt.Errorf("no sprite for direction %s", d)
	}
	t, err := c.textures.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	c.loaded[d] = t
	return t, nil
}

// Preload loads all four sprites so a missing file fails at phase start.
func (c *spriteCache) Preload() error {
	for _, d := range []core.Direction{core.East, core.West, core.North, core.South} {
		if _, err := c.Get(d); err != nil {
			return err
		}
	}
	return nil
}

// Release frees every loaded sprite.
func (c *spriteCache) Release() {
	for d, t := range c.loaded {
		c.textures.ReleaseTexture(t)
		delete(c.loaded, d)
	}
}
