package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
)

// SpawnBullet appends a bullet with its top-left corner at pos, travelling
// right when dir > 0 and left otherwise. The direction is fixed for its
// lifetime.
func SpawnBullet(w *ecs.World, s *component.Shooter, pos cp.Vector, dir float64) (ecs.Entity, error) {
	if s == nil {
		return 0, fmt.Errorf("bullet: nil shooter")
	}

	dx := s.BulletSpeed
	if dir <= 0 {
		dx = -dx
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Damage: s.BulletDamage}); err != nil {
		return 0, fmt.Errorf("bullet: add bullet: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("bullet: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: s.BulletWidth, Height: s.BulletHeight}); err != nil {
		return 0, fmt.Errorf("bullet: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{DX: dx}); err != nil {
		return 0, fmt.Errorf("bullet: add velocity: %w", err)
	}
	return e, nil
}
