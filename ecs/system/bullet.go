package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
)

// BulletCollisionSystem resolves each bullet exactly one way per frame: it
// hits the player, hits a platform, leaves the screen, or is kept.
type BulletCollisionSystem struct{}

func NewBulletCollisionSystem() *BulletCollisionSystem { return &BulletCollisionSystem{} }

func (s *BulletCollisionSystem) Update(w *ecs.World) {
	state, stage, ok := entity.State(w)
	if !ok {
		return
	}
	lvl, ok := stage.Current(state.Level)
	if !ok {
		return
	}
	var playerBox cp.BB
	player, hasPlayer := entity.Player(w)
	if hasPlayer {
		playerBox, hasPlayer = entityBox(w, player)
	}

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, bullet *component.Bullet) {
		if w.Halted() {
			return
		}
		box, ok := entityBox(w, e)
		if !ok {
			return
		}

		if hasPlayer && overlaps(box, playerBox) {
			ecs.DestroyEntity(w, e)
			damagePlayer(w, player, bullet.Damage, "bullet")
			return
		}

		for _, plat := range lvl.Platforms {
			if overlaps(box, rectBox(plat)) {
				ecs.DestroyEntity(w, e)
				return
			}
		}

		if !(box.L > 0 && box.L < stage.Width) {
			ecs.DestroyEntity(w, e)
		}
	})
}

// BulletMovementSystem advances every bullet by its horizontal speed.
type BulletMovementSystem struct{}

func NewBulletMovementSystem() *BulletMovementSystem { return &BulletMovementSystem{} }

func (s *BulletMovementSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.BulletComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, _ *component.Bullet, v *component.Velocity) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X += v.DX
		}
	})
}
