package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
)

// PatrolSystem paces live enemies through their behavior script. The ghost
// script moves first and turns around on the same frame it ends up outside
// its band.
type PatrolSystem struct {
	brains *Brains
}

func NewPatrolSystem(brains *Brains) *PatrolSystem {
	return &PatrolSystem{brains: brains}
}

func (s *PatrolSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.PatrolComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, _ *component.Patrol) {
		if !enemy.Alive {
			return
		}
		s.brains.Patrol(w, e)
	})
}
