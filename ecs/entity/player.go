package entity

import (
	"fmt"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Speed:       spec.MoveSpeed,
		Gravity:     spec.Gravity,
		JumpImpulse: spec.JumpSpeed,
		AttackRange: spec.AttackRange,
		SpawnX:      spec.Spawn.X,
		SpawnY:      spec.Spawn.Y,
		OnGround:    true,
		FacingRight: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Spawn.X, Y: spec.Spawn.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Collider.Width, Height: spec.Collider.Height}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{}); err != nil {
		return 0, fmt.Errorf("player: add invulnerable: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: spec.Sprite.Image}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.AttackEffectComponent.Kind(), &component.AttackEffect{
		Image:   spec.AttackEffect.Image,
		Width:   spec.AttackEffect.Width,
		Height:  spec.AttackEffect.Height,
		OffsetY: spec.AttackEffect.OffsetY,
	}); err != nil {
		return 0, fmt.Errorf("player: add attack effect: %w", err)
	}

	return e, nil
}
