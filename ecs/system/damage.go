package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// damagePlayer subtracts amount from the player's health. When health drops
// to zero or below it is clamped to zero, the game is marked lost and the
// world halts. It reports whether the player died.
func damagePlayer(w *ecs.World, player ecs.Entity, amount int, source string) bool {
	h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return false
	}

	h.Current -= amount
	dead := h.Current <= 0
	if dead {
		h.Current = 0
	}
	w.Events().Push(ecs.Event{
		Type: ecs.EventPlayerDamaged,
		Data: ecs.DamageEvent{Source: source, Amount: amount, Health: h.Current},
	})
	if !dead {
		return false
	}

	if state, _, ok := entity.State(w); ok {
		state.Lost = true
	}
	w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: source})
	w.Halt()
	return true
}
