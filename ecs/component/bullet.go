package component

// Bullet marks a projectile. Its horizontal speed lives in Velocity.DX.
type Bullet struct {
	Damage int
}

var BulletComponent = NewComponent[Bullet]()
