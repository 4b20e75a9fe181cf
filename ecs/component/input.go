package component

// Input stores the polled key state for an entity.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

var InputComponent = NewComponent[Input]()
