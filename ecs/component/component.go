package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside the world. Zero is never issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind identifies the store for values of type T. The zero value is
// invalid and rejected by the world.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// Name is the Go type stored under this kind, used in error messages.
func (k ComponentKind[T]) Name() string { return k.name }

// ComponentHandle is declared once per component type at package level, as
// in `var PlayerComponent = NewComponent[Player]()`.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
