package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// PhysicsSystem integrates gravity, lands the player on platforms it falls
// onto and clamps it to the ground bar. A landing happens when the bottom
// edge will cross a platform top on the next step, or has just crossed it on
// this one. Horizontal movement never collides.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	state, stage, ok := entity.State(w)
	if !ok {
		return
	}
	lvl, ok := stage.Current(state.Level)
	if !ok {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
		if !ok {
			return
		}
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			return
		}

		prevBottom := t.Y + b.Height
		v.DY += p.Gravity
		t.Y += v.DY

		// Every platform is tested against the same post-gravity box, shifted
		// one step ahead horizontally. A later platform in the list overrides
		// an earlier landing.
		bottom := t.Y + b.Height
		nextL := t.X + p.Speed
		nextR := nextL + b.Width
		landed := false
		landY := t.Y
		p.OnGround = false
		for _, plat := range lvl.Platforms {
			pb := rectBox(plat)
			if v.DY < 0 || nextR <= pb.L || nextL >= pb.R {
				continue
			}
			projected := bottom <= pb.B && bottom+v.DY > pb.B
			stepped := prevBottom <= pb.B && bottom > pb.B
			if projected || stepped {
				landed = true
				landY = pb.B - b.Height
			}
		}
		if landed {
			t.Y = landY
			v.DY = 0
			p.OnGround = true
			p.Jumping = false
		}

		floor := stage.FloorY()
		if t.Y+b.Height >= floor {
			t.Y = floor - b.Height
			v.DY = 0
			p.OnGround = true
			p.Jumping = false
		}
	})
}
