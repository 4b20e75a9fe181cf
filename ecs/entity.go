package ecs

import "fmt"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. Destroying an entity bumps the generation, so a stale handle
// never matches the slot's next occupant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String prints the slot and generation, e.g. "7#2".
func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}
