package component

// Brain names the tengo script under prefabs/scripts that decides how an
// enemy paces and which way it shoots.
type Brain struct {
	Script string
}

var BrainComponent = NewComponent[Brain]()
