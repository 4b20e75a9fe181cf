package component

type Velocity struct {
	DX float64
	DY float64
}

var VelocityComponent = NewComponent[Velocity]()
