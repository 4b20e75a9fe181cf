package component

// Invulnerable counts down the frames during which enemy contact cannot
// damage the entity again. Frames never goes below zero.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
