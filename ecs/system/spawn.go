package system

import (
	"log"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// BulletSpawnSystem fires a bullet from each live, enabled shooter once every
// Shooter.PeriodFrames updates. The behavior script picks the direction when
// the bullet is fired.
type BulletSpawnSystem struct {
	brains *Brains
}

func NewBulletSpawnSystem(brains *Brains) *BulletSpawnSystem {
	return &BulletSpawnSystem{brains: brains}
}

func (s *BulletSpawnSystem) Update(w *ecs.World) {
	_, hasPlayer := entity.Player(w)

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.ShooterComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, shooter *component.Shooter) {
		if shooter.PeriodFrames <= 0 {
			return
		}
		shooter.Elapsed++
		if shooter.Elapsed < shooter.PeriodFrames {
			return
		}
		shooter.Elapsed = 0
		if !shooter.Enabled || !enemy.Alive || !hasPlayer {
			return
		}

		box, ok := entityBox(w, e)
		if !ok {
			return
		}
		dir, ok := s.brains.Aim(w, e)
		if !ok {
			return
		}
		if _, err := entity.SpawnBullet(w, shooter, box.Center(), dir); err != nil {
			log.Printf("spawn: %v", err)
		}
	})
}
