package session

import (
	"fmt"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// Splash shows the title and a blinking prompt until Enter or quit.
type Splash struct {
	textures   Textures
	font       core.Font
	background *core.Texture
	title      *core.Texture
	prompt     *core.Texture
	margin     int
	blink      BlinkTimer
	quit       bool
}

// NewSplash acquires the splash font and optional background.
// Either one missing is a fatal error.
func NewSplash(cfg config.SplashConfig, textures Textures, fonts Fonts) (*Splash, error) {
	font, err := fonts.OpenFont(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("splash: %w", err)
	}

	s := &Splash{
		textures: textures,
		font:     font,
		margin:   cfg.TitleMargin,
	}

	if cfg.Background != "" {
		bg, err := textures.LoadTexture(cfg.Background)
		if err != nil {
			font.Close()
			return nil, fmt.Errorf("splash: %w", err)
		}
		s.background = bg
	}

	color := colorOr(cfg.TextColor, core.ColorBrightWhite)
	s.title = font.RenderText(cfg.Title, color)
	s.prompt = font.RenderText(cfg.Prompt, color)
	return s, nil
}

// Step runs one splash frame.
func (s *Splash) Step(in core.InputFrame, dst *core.Screen) bool {
	if in.Closed {
		s.quit = true
		return true
	}
	if in.Held(core.KeyEnter) {
		return true
	}

	s.blink.Advance()

	dst.Clear()
	if s.background != nil {
		dst.DrawTexture(s.background, 0, 0)
	}

	w, h := frameSize(in, dst)
	dst.DrawTexture(s.title, core.CenteredX(w, s.title.Width()), h/2-s.title.Height()-s.margin)
	if s.blink.Visible() {
		dst.DrawTexture(s.prompt, core.CenteredX(w, s.prompt.Width()), h/2)
	}
	return false
}

// Quit reports whether the splash ended on the close signal.
func (s *Splash) Quit() bool {
	return s.quit
}

// Close releases the splash resources.
func (s *Splash) Close() {
	if s.background != nil {
		s.textures.ReleaseTexture(s.background)
		s.background = nil
	}
	if s.font != nil {
		s.font.Close()
		s.font = nil
	}
}

// frameSize is the queried window size, falling back to the screen buffer.
func frameSize(in core.InputFrame, dst *core.Screen) (int, int) {
	w, h := in.Width, in.Height
	if w <= 0 || h <= 0 {
		w, h = dst.Width(), dst.Height()
	}
	return w, h
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}
