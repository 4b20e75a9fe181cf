package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// EnemyContactSystem hurts the player on touching a live enemy, then opens a
// grace window. Contact is ignored while the player attacks or is still
// inside a grace window.
type EnemyContactSystem struct{}

func NewEnemyContactSystem() *EnemyContactSystem { return &EnemyContactSystem{} }

func (s *EnemyContactSystem) Update(w *ecs.World) {
	player, ok := entity.Player(w)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok || p.Attacking {
		return
	}
	inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind())
	if !ok || inv.Frames > 0 {
		return
	}
	playerBox, ok := entityBox(w, player)
	if !ok {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.ContactDamageComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, dmg *component.ContactDamage) {
		if !enemy.Alive || inv.Frames > 0 || w.Halted() {
			return
		}
		box, ok := entityBox(w, e)
		if !ok || !overlaps(playerBox, box) {
			return
		}
		inv.Frames = dmg.GraceFrames
		damagePlayer(w, player, dmg.Amount, enemy.Name)
	})
}
