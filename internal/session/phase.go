package session

import "fmt"

// Phase is a mutually exclusive stage of the session.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseGameplay
	PhaseGameOver
	PhaseDone // terminal, no phase active
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhaseGameplay:
		return "gameplay"
	case PhaseGameOver:
		return "game_over"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// CanEnter reports whether next may follow p. Transitions only move
// forward; no phase is ever re-entered.
func (p Phase) CanEnter(next Phase) bool {
	switch p {
	case PhaseSplash:
		return next == PhaseGameplay || next == PhaseDone
	case PhaseGameplay:
		return next == PhaseGameOver || next == PhaseDone
	case PhaseGameOver:
		return next == PhaseDone
	default:
		return false
	}
}

// Transition is what a phase run returns to the controller.
type Transition struct {
	Next Phase
	Quit bool // the phase ended on the window-close signal
}
