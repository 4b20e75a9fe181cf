package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/entity"
)

// TrapSystem damages the player once per overlapping trap per frame.
type TrapSystem struct{}

func NewTrapSystem() *TrapSystem { return &TrapSystem{} }

func (s *TrapSystem) Update(w *ecs.World) {
	state, stage, ok := entity.State(w)
	if !ok {
		return
	}
	lvl, ok := stage.Current(state.Level)
	if !ok || len(lvl.Traps) == 0 {
		return
	}
	player, ok := entity.Player(w)
	if !ok {
		return
	}
	box, ok := entityBox(w, player)
	if !ok {
		return
	}

	for _, trap := range lvl.Traps {
		if !overlaps(box, rectBox(trap)) {
			continue
		}
		if damagePlayer(w, player, stage.TrapDamage, "trap") {
			return
		}
	}
}
