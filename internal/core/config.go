package core

// RuntimeConfig describes the terminal a phase runs in.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for cheese placement, 0 means time-based
}

// DefaultConfig returns the 80x24 reference terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
