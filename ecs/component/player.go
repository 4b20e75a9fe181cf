package component

type Player struct {
	// Speed is the fixed horizontal distance moved per frame while a move key is held.
	Speed       float64
	Gravity     float64
	JumpImpulse float64
	AttackRange float64

	SpawnX float64
	SpawnY float64

	Jumping     bool
	OnGround    bool
	Attacking   bool
	FacingRight bool
}

var PlayerComponent = NewComponent[Player]()
