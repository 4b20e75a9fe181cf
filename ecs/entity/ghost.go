package entity

import (
	"fmt"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/prefabs"
)

// NewGhost creates the level enemy. Its position and patrol direction are
// set by ResetLevel from the current level's spawn. tps turns the bullet
// period into frames.
func NewGhost(w *ecs.World, spec *prefabs.GhostSpec, tps int) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("ghost: nil spec")
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Name: spec.Name, Alive: true}); err != nil {
		return 0, fmt.Errorf("ghost: add enemy: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("ghost: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: spec.Collider.Width, Height: spec.Collider.Height}); err != nil {
		return 0, fmt.Errorf("ghost: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("ghost: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PatrolComponent.Kind(), &component.Patrol{MinX: spec.Patrol.MinX, MaxX: spec.Patrol.MaxX}); err != nil {
		return 0, fmt.Errorf("ghost: add patrol: %w", err)
	}
	if err := ecs.Add(w, e, component.ContactDamageComponent.Kind(), &component.ContactDamage{
		Amount:      spec.ContactDamage,
		GraceFrames: spec.GraceFrames,
	}); err != nil {
		return 0, fmt.Errorf("ghost: add contact damage: %w", err)
	}
	if err := ecs.Add(w, e, component.ShooterComponent.Kind(), &component.Shooter{
		PeriodFrames: framesFor(spec.Bullet.Period, tps),
		BulletWidth:  spec.Bullet.Width,
		BulletHeight: spec.Bullet.Height,
		BulletSpeed:  spec.Bullet.Speed,
		BulletDamage: spec.Bullet.Damage,
	}); err != nil {
		return 0, fmt.Errorf("ghost: add shooter: %w", err)
	}
	if err := ecs.Add(w, e, component.BrainComponent.Kind(), &component.Brain{Script: spec.Script}); err != nil {
		return 0, fmt.Errorf("ghost: add brain: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: spec.Sprite.Image}); err != nil {
		return 0, fmt.Errorf("ghost: add sprite: %w", err)
	}

	return e, nil
}
