package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
)

// InvulnerableSystem counts grace windows down to zero.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Frames > 0 {
			inv.Frames--
		}
	})
}
