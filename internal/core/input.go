package core

// Key is a semantic key, abstracted from the terminal's key names.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow, w
	KeyDown      // Down arrow, s
	KeyLeft      // Left arrow, a
	KeyRight     // Right arrow, d
	KeyEnter     // Enter on the main block or keypad
	KeyOther     // any other key-down
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// InputFrame is everything a phase sees of the outside world for one frame.
// Keys holds the keys currently held, which for a terminal means every
// key-down received since the previous frame.
type InputFrame struct {
	Keys   map[Key]bool
	Closed bool // window-close (quit) signal observed
	Width  int  // current window width in cells
	Height int  // current window height in cells
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// Press marks a key as held for this frame.
func (f *InputFrame) Press(k Key) {
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Held returns true if the key is held this frame.
func (f InputFrame) Held(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// AnyKey reports whether any key-down was observed.
func (f InputFrame) AnyKey() bool {
	for _, down := range f.Keys {
		if down {
			return true
		}
	}
	return false
}

// Clear resets keys and the close signal for the next frame.
// The window size is kept.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
	f.Closed = false
}
