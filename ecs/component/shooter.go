package component

// Shooter fires bullets at the player every PeriodFrames updates. Elapsed
// keeps counting while Enabled is false so the cadence is independent of
// level changes.
type Shooter struct {
	Enabled      bool
	PeriodFrames int
	Elapsed      int

	BulletWidth  float64
	BulletHeight float64
	BulletSpeed  float64
	BulletDamage int
}

var ShooterComponent = NewComponent[Shooter]()
