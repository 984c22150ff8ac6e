package core

// Target is the consumable the actor chases. Where it lands on Respawn is
// its own business.
type Target interface {
	Rect() Rect
	Respawn()
}

// Actor is the player-controlled entity. Its movement and collision rules
// live behind this contract.
type Actor interface {
	Turn(d Direction)
	Move()
	Grow()
	CanReach(t Target) bool
	Rect() Rect
	// Crashed reports the terminal collision (self or boundary).
	Crashed() bool
}
