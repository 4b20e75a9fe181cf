package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// AttackSystem defeats the enemy when it is inside the player's reach on the
// facing side and the two overlap vertically. The level advance is deferred
// to TransitionSystem.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem { return &AttackSystem{} }

func (s *AttackSystem) Update(w *ecs.World) {
	state, _, ok := entity.State(w)
	if !ok {
		return
	}
	player, ok := entity.Player(w)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || !p.Attacking {
		return
	}
	pb, ok := entityBox(w, player)
	if !ok {
		return
	}

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if !enemy.Alive {
			return
		}
		eb, ok := entityBox(w, e)
		if !ok {
			return
		}

		var inReach bool
		if p.FacingRight {
			inReach = pb.R+p.AttackRange >= eb.L && pb.L < eb.L
		} else {
			inReach = pb.L-p.AttackRange <= eb.R && pb.L > eb.L
		}
		aligned := pb.B < eb.T && pb.T > eb.B
		if !inReach || !aligned {
			return
		}

		enemy.Alive = false
		state.Transitioning = true
		state.TransitionFrames = state.TransitionDelay
		w.Events().Push(ecs.Event{Type: ecs.EventEnemyDefeated, Data: enemy.Name})
	})
}
