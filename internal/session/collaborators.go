package session

import (
	"time"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/core"
)

// Textures loads and releases texture handles.
type Textures interface {
	LoadTexture(path string) (*core.Texture, error)
	ReleaseTexture(t *core.Texture)
}

// Fonts opens fonts at a given size.
type Fonts interface {
	OpenFont(path string, size int) (core.Font, error)
}

// Audio loads and plays sound effects. Play must not wait for the sound.
type Audio interface {
	LoadSound(path string) (core.Sound, error)
	Play(s core.Sound)
	FreeSound(s core.Sound)
}

// ScoreStore is the durable high score record.
type ScoreStore interface {
	// Load returns the stored high score, 0 when there is none.
	Load() int
	// Save overwrites the record. Failures are the store's to report.
	Save(v int)
}

// History archives finished runs. Optional.
type History interface {
	SaveScore(gameID string, score int) (int64, error)
}

// WindowSpec describes the window a phase runs in.
type WindowSpec struct {
	Title    string
	Delay    time.Duration // pacing delay between frames
	ShowHelp bool          // draw the key help line on the bottom row
}

// Loop is the body of a phase, stepped once per frame by the host.
type Loop interface {
	// Step processes one frame of input and draws into dst.
	// It returns true when the phase is over; dst is not presented then.
	Step(in core.InputFrame, dst *core.Screen) bool
}

// Host is the window and event provider. Run creates a window, steps the
// loop until it reports done and destroys the window again.
type Host interface {
	Size() (width, height int)
	Run(spec WindowSpec, loop Loop) error
}

// WorldFunc creates the actor and its target for a board of the given size.
type WorldFunc func(board core.RuntimeConfig, cfg config.GameplayConfig) (core.Actor, core.Target)
