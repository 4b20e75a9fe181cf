package component

// Enemy is the per-level opponent. A defeated enemy stays in the world with
// Alive cleared until the next level reset revives it.
type Enemy struct {
	Name  string
	Alive bool
}

var EnemyComponent = NewComponent[Enemy]()

// Patrol keeps an enemy pacing inside [MinX, MaxX].
type Patrol struct {
	MinX float64
	MaxX float64
}

var PatrolComponent = NewComponent[Patrol]()

// ContactDamage is applied to the player on overlap, followed by a grace
// window of GraceFrames.
type ContactDamage struct {
	Amount      int
	GraceFrames int
}

var ContactDamageComponent = NewComponent[ContactDamage]()
