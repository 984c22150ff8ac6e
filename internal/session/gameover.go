package session

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// GameOver shows the terminal message and waits for any key.
// The message is centered on the fixed reference frame, not on the
// queried window size.
type GameOver struct {
	audio   Audio
	font    core.Font
	message *core.Texture
	dead    core.Sound
	frame   core.RuntimeConfig
	shown   bool
}

// NewGameOver opens the large font and renders the message. A missing
// font is fatal; a missing sound is logged and skipped.
func NewGameOver(cfg config.GameOverConfig, fonts Fonts, audio Audio, logger *log.Logger) (*GameOver, error) {
	font, err := fonts.OpenFont(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("game over: %w", err)
	}

	g := &GameOver{
		audio:   audio,
		font:    font,
		message: font.RenderText(cfg.Message, colorOr(cfg.TextColor, core.ColorBrightWhite)),
		frame:   core.DefaultConfig(),
	}

	if cfg.DeadSound != "" {
		sound, err := audio.LoadSound(cfg.DeadSound)
		if err != nil {
			if logger != nil {
				logger.Warn("dead sound unavailable", "path", cfg.DeadSound, "error", err)
			}
		} else {
			g.dead = sound
		}
	}
	return g, nil
}

// Step draws the message; the first frame also plays the sound. Any key
// or the close signal after that ends the phase.
func (g *GameOver) Step(in core.InputFrame, dst *core.Screen) bool {
	if g.shown && (in.Closed || in.AnyKey()) {
		return true
	}

	dst.Clear()
	x := g.frame.ScreenW/2 - g.message.Width()/2
	y := g.frame.ScreenH/2 - g.message.Height()/2
	dst.DrawTexture(g.message, x, y)

	if !g.shown {
		g.shown = true
		if g.dead != nil {
			g.audio.Play(g.dead)
		}
	}
	return false
}

// Close releases the font and sound.
func (g *GameOver) Close() {
	if g.font != nil {
		g.font.Close()
		g.font = nil
	}
	if g.dead != nil {
		g.audio.FreeSound(g.dead)
		g.dead = nil
	}
}
