package session

// CycleLen is the number of ticks in one blink cycle.
const CycleLen = 100

// BlinkTimer drives the visibility of blinking prompt text.
// The counter always stays in [0, CycleLen).
type BlinkTimer struct {
	tick int
}

// Advance moves the counter one tick, wrapping at CycleLen.
func (b *BlinkTimer) Advance() {
	b.tick++
	if b.tick >= CycleLen {
		b.tick = 0
	}
}

// Visible reports whether the text is shown: the first half of the cycle.
func (b *BlinkTimer) Visible() bool {
	return b.tick < CycleLen/2
}

// Tick returns the current counter value.
func (b *BlinkTimer) Tick() int {
	return b.tick
}
