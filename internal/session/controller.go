package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// Deps are the external collaborators of a session.
type Deps struct {
	Host     Host
	Textures Textures
	Fonts    Fonts
	Audio    Audio
	Scores   ScoreStore
	History  History // may be nil
	World    WorldFunc
	Logger   *log.Logger
}

// Controller runs the phases of one session strictly in sequence.
type Controller struct {
	cfg      config.Config
	deps     Deps
	observer func(Phase)
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers a callback invoked on every phase entered.
func WithObserver(fn func(Phase)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

// NewController creates a controller for the given configuration.
func NewController(cfg config.Config, deps Deps, opts ...Option) *Controller {
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	c := &Controller{cfg: cfg, deps: deps}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives Splash -> Gameplay -> GameOver and returns the finished
// session. A resource failure aborts the session with an error.
func (c *Controller) Run() (*Session, error) {
	if c.deps.Host == nil {
		return nil, errors.New("session: no host")
	}

	s := New()
	phase := PhaseSplash
	for phase != PhaseDone {
		s.phase = phase
		c.deps.Logger.Debug("entering phase", "phase", phase)
		if c.observer != nil {
			c.observer(phase)
		}

		tr, err := c.runPhase(phase, s)
		if err != nil {
			return s, err
		}
		if !phase.CanEnter(tr.Next) {
			return s, fmt.Errorf("session: illegal transition %s -> %s", phase, tr.Next)
		}
		if tr.Quit {
			s.quit = true
		}
		phase = tr.Next
	}
	s.phase = PhaseDone
	return s, nil
}

func (c *Controller) runPhase(p Phase, s *Session) (Transition, error) {
	switch p {
	case PhaseSplash:
		return c.runSplash()
	case PhaseGameplay:
		return c.runGameplay(s)
	case PhaseGameOver:
		return c.runGameOver()
	default:
		return Transition{}, fmt.Errorf("session: no runner for %s", p)
	}
}

func (c *Controller) runSplash() (Transition, error) {
	cfg := c.cfg.Splash
	splash, err := NewSplash(cfg, c.deps.Textures, c.deps.Fonts)
	if err != nil {
		return Transition{}, err
	}
	defer splash.Close()

	spec := WindowSpec{Title: cfg.WindowTitle, Delay: cfg.Delay(), ShowHelp: true}
	if err := c.deps.Host.Run(spec, splash); err != nil {
		return Transition{}, fmt.Errorf("splash: %w", err)
	}

	if splash.Quit() {
		return Transition{Next: PhaseDone, Quit: true}, nil
	}
	return Transition{Next: PhaseGameplay}, nil
}

func (c *Controller) runGameplay(s *Session) (Transition, error) {
	cfg := c.cfg.Gameplay
	w, h := c.deps.Host.Size()
	board := core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: time.Now().UnixNano()}
	actor, target := c.deps.World(board, cfg)

	gameplay, err := NewGameplay(s, cfg, GameplayDeps{
		Textures: c.deps.Textures,
		Fonts:    c.deps.Fonts,
		Audio:    c.deps.Audio,
		Store:    c.deps.Scores,
		Logger:   c.deps.Logger,
	}, actor, target)
	if err != nil {
		return Transition{}, err
	}

	runErr := c.deps.Host.Run(WindowSpec{Title: cfg.WindowTitle, Delay: cfg.Delay()}, gameplay)
	gameplay.Close()
	if runErr != nil {
		return Transition{}, fmt.Errorf("gameplay: %w", runErr)
	}

	c.archive(s.Score())

	quit := gameplay.Quit()
	if quit && !c.cfg.Session.GameOverOnQuit {
		return Transition{Next: PhaseDone, Quit: true}, nil
	}
	return Transition{Next: PhaseGameOver, Quit: quit}, nil
}

// archive stores the finished run in the history, best effort.
func (c *Controller) archive(score int) {
	if c.deps.History == nil || score <= 0 {
		return
	}
	if _, err := c.deps.History.SaveScore(GameID, score); err != nil {
		c.deps.Logger.Warn("could not archive run", "score", score, "error", err)
	}
}

func (c *Controller) runGameOver() (Transition, error) {
	cfg := c.cfg.GameOver
	over, err := NewGameOver(cfg, c.deps.Fonts, c.deps.Audio, c.deps.Logger)
	if err != nil {
		return Transition{}, err
	}
	defer over.Close()

	if err := c.deps.Host.Run(WindowSpec{Title: cfg.WindowTitle, Delay: cfg.Delay()}, over); err != nil {
		return Transition{}, fmt.Errorf("game over: %w", err)
	}
	return Transition{Next: PhaseDone}, nil
}
