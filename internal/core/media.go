package core

// Font renders strings into textures.
type Font interface {
	// RenderText returns a texture sized to the rendered string.
	RenderText(text string, c Color) *Texture
	Close()
}

// Sound is a loaded sound effect handle.
type Sound interface {
	Name() string
}
