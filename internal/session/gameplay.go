package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// tailed is implemented by actors that have body segments to draw.
type tailed interface {
	Tail() []core.Rect
}

// headed is implemented by actors that may refuse a turn; the sprite then
// follows the heading the actor actually took.
type headed interface {
	Heading() core.Direction
}

// Gameplay is the per-frame play loop: input, direction, actor step,
// collision, scoring and rendering.
type Gameplay struct {
	session *Session
	store   ScoreStore
	logger  *log.Logger

	textures Textures
	audio    Audio

	actor  core.Actor
	target core.Target

	font       core.Font
	hudColor   core.Color
	background *core.Texture
	cheese     *core.Texture
	body       *core.Texture
	sprites    *spriteCache
	eat        core.Sound

	dir  core.Direction
	quit bool
}

// GameplayDeps are the collaborators a gameplay phase needs.
type GameplayDeps struct {
	Textures Textures
	Fonts    Fonts
	Audio    Audio
	Store    ScoreStore
	Logger   *log.Logger
}

// NewGameplay acquires the phase resources and starts a fresh score.
// A missing font or texture is fatal; everything acquired so far is
// released before the error is returned. A missing eat sound only
// silences the bite.
func NewGameplay(s *Session, cfg config.GameplayConfig, deps GameplayDeps, actor core.Actor, target core.Target) (g *Gameplay, err error) {
	g = &Gameplay{
		session:  s,
		store:    deps.Store,
		logger:   deps.Logger,
		textures: deps.Textures,
		audio:    deps.Audio,
		actor:    actor,
		target:   target,
		hudColor: colorOr(cfg.HUDColor, core.ColorBrightYellow),
		sprites:  newSpriteCache(deps.Textures, cfg.Mouse),
		dir:      core.East,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	defer func() {
		if err != nil {
			g.Close()
			g = nil
		}
	}()

	if g.font, err = deps.Fonts.OpenFont(cfg.Font, cfg.FontSize); err != nil {
		return g, fmt.Errorf("gameplay: %w", err)
	}
	if g.cheese, err = deps.Textures.LoadTexture(cfg.Cheese); err != nil {
		return g, fmt.Errorf("gameplay: %w", err)
	}
	if g.background, err = deps.Textures.LoadTexture(cfg.Background); err != nil {
		return g, fmt.Errorf("gameplay: %w", err)
	}
	if g.body, err = deps.Textures.LoadTexture(cfg.Mouse.Body); err != nil {
		return g, fmt.Errorf("gameplay: %w", err)
	}
	if err = g.sprites.Preload(); err != nil {
		return g, fmt.Errorf("gameplay: %w", err)
	}

	if cfg.EatSound != "" {
		sound, soundErr := deps.Audio.LoadSound(cfg.EatSound)
		if soundErr != nil {
			g.logger.Warn("eat sound unavailable", "path", cfg.EatSound, "error", soundErr)
		} else {
			g.eat = sound
		}
	}

	s.beginGameplay(deps.Store)
	return g, nil
}

// Step runs one gameplay frame.
func (g *Gameplay) Step(in core.InputFrame, dst *core.Screen) bool {
	if !g.Running() {
		return true
	}

	dst.Clear()
	dst.DrawTexture(g.background, 0, 0)

	if in.Closed {
		g.quit = true
	}

	// The actor only hears about a change of heading.
	if dir := ResolveDirection(g.dir, in); dir != g.dir {
		g.dir = dir
		g.actor.Turn(dir)
		if h, ok := g.actor.(headed); ok {
			g.dir = h.Heading()
		}
	}

	sprite, err := g.sprites.Get(g.dir)
	if err != nil {
		g.logger.Error("sprite unavailable", "direction", g.dir, "error", err)
	}

	g.actor.Move()
	if g.actor.CanReach(g.target) {
		g.target.Respawn()
		g.actor.Grow()
		if g.eat != nil {
			g.audio.Play(g.eat)
		}
		if g.session.consume(g.store) {
			g.logger.Info("high score improved", "score", g.session.HighScore())
		}
	}

	if t, ok := g.actor.(tailed); ok {
		for _, seg := range t.Tail() {
			dst.DrawTexture(g.body, seg.X, seg.Y)
		}
	}
	head := g.actor.Rect()
	dst.DrawTexture(sprite, head.X, head.Y)
	cheese := g.target.Rect()
	dst.DrawTexture(g.cheese, cheese.X, cheese.Y)
	g.renderScore(dst)
	return false
}

// renderScore draws the score on the left and the high score on the right
// of the top row.
func (g *Gameplay) renderScore(dst *core.Screen) {
	score := g.font.RenderText("Score: "+strconv.Itoa(g.session.Score()), g.hudColor)
	score.Opaque = true
	dst.DrawTexture(score, 1, 0)

	best := g.font.RenderText("Highest: "+strconv.Itoa(g.session.HighScore()), g.hudColor)
	best.Opaque = true
	dst.DrawTexture(best, dst.Width()-best.Width()-1, 0)
}

// Running reports whether another frame should run: no quit signal and no
// terminal collision.
func (g *Gameplay) Running() bool {
	return !g.quit && !g.actor.Crashed()
}

// Quit reports whether the phase ended on the close signal.
func (g *Gameplay) Quit() bool {
	return g.quit
}

// Direction returns the heading selected by input.
func (g *Gameplay) Direction() core.Direction {
	return g.dir
}

// Close releases every long-lived phase resource.
func (g *Gameplay) Close() {
	g.sprites.Release()
	for _, t := range []**core.Texture{&g.background, &g.cheese, &g.body} {
		if *t != nil {
			g.textures.ReleaseTexture(*t)
			*t = nil
		}
	}
	if g.font != nil {
		g.font.Close()
		g.font = nil
	}
	if g.eat != nil {
		g.audio.FreeSound(g.eat)
		g.eat = nil
	}
}
