package system

import (
	"github.com/milk9111/bonk/ecs"
)

// NewGameplayScheduler wires the per-frame update in its fixed order. The
// patrol and spawn systems share one set of enemy brains.
func NewGameplayScheduler(source KeySource) *ecs.Scheduler {
	brains := NewBrains()
	return ecs.NewScheduler(
		NewTransitionSystem(),
		NewInputSystem(source),
		NewInvulnerableSystem(),
		NewPlayerControlSystem(),
		NewPhysicsSystem(),
		NewTrapSystem(),
		NewEnemyContactSystem(),
		NewBulletCollisionSystem(),
		NewPatrolSystem(brains),
		NewAttackSystem(),
		NewBulletMovementSystem(),
		NewBulletSpawnSystem(brains),
	)
}
