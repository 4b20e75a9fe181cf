package component

// Sprite names an image in the assets package. FlipX mirrors it horizontally.
type Sprite struct {
	Image string
	FlipX bool
}

var SpriteComponent = NewComponent[Sprite]()

// AttackEffect is the sprite drawn ahead of the player while attacking.
type AttackEffect struct {
	Image   string
	Width   float64
	Height  float64
	OffsetY float64
}

var AttackEffectComponent = NewComponent[AttackEffect]()
