package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
)

// PlayerControlSystem applies the polled input: horizontal moves, jump and
// attack. Left and right are not exclusive; holding both moves left then
// right and leaves the player facing right.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			return
		}

		if in.Left {
			t.X -= p.Speed
			p.FacingRight = false
		}
		if in.Right {
			t.X += p.Speed
			p.FacingRight = true
		}
		if in.Jump && p.OnGround {
			v.DY = p.JumpImpulse
			p.OnGround = false
			p.Jumping = true
		}
		if in.Attack {
			p.Attacking = true
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = !p.FacingRight
		}
	})
}
