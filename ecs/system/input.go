package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
)

// KeySource produces the key state for one update.
type KeySource interface {
	Snapshot() component.Input
}

// KeyboardSource reads the keyboard through ebiten.
type KeyboardSource struct{}

func (KeyboardSource) Snapshot() component.Input {
	return component.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Attack: ebiten.IsKeyPressed(ebiten.KeyZ),
	}
}

type InputSystem struct {
	source KeySource
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}

	snap := i.source.Snapshot()
	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, input *component.Input, player *component.Player) {
		*input = snap
		// the attack only lasts while the key is down, however the release
		// was missed (pause, focus loss)
		if !snap.Attack {
			player.Attacking = false
		}
	})
}
