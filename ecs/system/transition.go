package system

import (
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/entity"
)

// TransitionSystem counts down the delay between the enemy's defeat and the
// level advance. It runs first in the frame so the advance lands between
// two updates.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem { return &TransitionSystem{} }

func (s *TransitionSystem) Update(w *ecs.World) {
	state, _, ok := entity.State(w)
	if !ok || !state.Transitioning {
		return
	}
	if state.TransitionFrames > 0 {
		state.TransitionFrames--
	}
	if state.TransitionFrames > 0 {
		return
	}
	entity.AdvanceLevel(w)
}
