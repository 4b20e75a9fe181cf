package component

// Body is the axis-aligned collision box of an entity, anchored at its
// Transform.
type Body struct {
	Width  float64
	Height float64
}

var BodyComponent = NewComponent[Body]()
