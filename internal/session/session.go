// Package session implements the game's session state machine: the splash,
// gameplay and game over phases, the scoring protocol and the controller
// sequencing them.
package session

// GameID identifies this game in the run history.
const GameID = "jerry"

// Session is the top-level aggregate. Only highScore outlives the process,
// through the ScoreStore.
type Session struct {
	phase     Phase
	score     int
	highScore int
	quit      bool
}

// New creates a session positioned before the splash phase.
func New() *Session {
	return &Session{phase: PhaseSplash}
}

// Phase returns the active phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the score of the current (or last) gameplay phase.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Quit reports whether the session ended on a quit signal.
func (s *Session) Quit() bool {
	return s.quit
}

// beginGameplay resets the score and reads the durable high score.
func (s *Session) beginGameplay(store ScoreStore) {
	s.score = 0
	if stored := store.Load(); stored > s.highScore {
		s.highScore = stored
	}
}

// consume records one eaten target. When the score passes the high score
// the record is saved at once; the return value reports that.
func (s *Session) consume(store ScoreStore) bool {
	s.score++
	if s.score <= s.highScore {
		return false
	}
	s.highScore = s.score
	store.Save(s.highScore)
	return true
}
