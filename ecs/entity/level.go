package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/prefabs"
)

// LevelEvent is the payload of ecs.EventLevelLoaded.
type LevelEvent struct {
	Index int
	Name  string
}

// BuildWorld creates a world holding the game state, the player and the
// ghost. tps is the number of updates per second, used to turn the
// configured durations into frames.
func BuildWorld(cfg *prefabs.Config, tps int) (*ecs.World, error) {
	if cfg == nil || cfg.Player == nil || cfg.Ghost == nil || cfg.Rules == nil || cfg.Levels == nil {
		return nil, fmt.Errorf("world: incomplete config")
	}
	if tps <= 0 {
		return nil, fmt.Errorf("world: tps must be positive, got %d", tps)
	}

	w := ecs.NewWorld()

	state := ecs.CreateEntity(w)
	if err := ecs.Add(w, state, component.StageComponent.Kind(), &component.Stage{
		Width:        cfg.Levels.Width,
		Height:       cfg.Levels.Height,
		GroundHeight: cfg.Rules.GroundHeight,
		TrapDamage:   cfg.Rules.TrapDamage,
		Levels:       cfg.Levels.Levels,
	}); err != nil {
		return nil, fmt.Errorf("world: add stage: %w", err)
	}
	delay := framesFor(cfg.Rules.TransitionDelay, tps)
	if err := ecs.Add(w, state, component.GameStateComponent.Kind(), &component.GameState{TransitionDelay: delay}); err != nil {
		return nil, fmt.Errorf("world: add game state: %w", err)
	}

	if _, err := NewPlayer(w, cfg.Player); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if _, err := NewGhost(w, cfg.Ghost, tps); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return w, nil
}

// framesFor rounds d to the nearest whole number of updates, never less
// than one.
func framesFor(d time.Duration, tps int) int {
	return max(1, int(math.Round(d.Seconds()*float64(tps))))
}

// StartGame performs the first level reset. It is the only way the first
// level is entered; later levels are entered through AdvanceLevel.
func StartGame(w *ecs.World) {
	ResetLevel(w)
}

// ResetLevel puts the player back at its spawn, revives the ghost at the
// current level's spawn and clears every bullet. Calling it twice in a row
// yields the same world. Health is left untouched.
func ResetLevel(w *ecs.World) {
	state, stage, ok := State(w)
	if !ok {
		return
	}
	lvl, ok := stage.Current(state.Level)
	if !ok {
		return
	}

	if p, ok := Player(w); ok {
		player, _ := ecs.Get(w, p, component.PlayerComponent.Kind())
		if t, ok := ecs.Get(w, p, component.TransformComponent.Kind()); ok && player != nil {
			t.X = player.SpawnX
			t.Y = player.SpawnY
		}
		if v, ok := ecs.Get(w, p, component.VelocityComponent.Kind()); ok {
			*v = component.Velocity{}
		}
		if player != nil {
			player.OnGround = true
			player.Jumping = false
			player.Attacking = false
		}
		if inv, ok := ecs.Get(w, p, component.InvulnerableComponent.Kind()); ok {
			inv.Frames = 0
		}
	}

	if g, ok := Ghost(w); ok {
		if enemy, ok := ecs.Get(w, g, component.EnemyComponent.Kind()); ok {
			enemy.Alive = true
		}
		if t, ok := ecs.Get(w, g, component.TransformComponent.Kind()); ok {
			t.X = lvl.Ghost.X
			t.Y = lvl.Ghost.Y
		}
		if v, ok := ecs.Get(w, g, component.VelocityComponent.Kind()); ok {
			*v = component.Velocity{DX: lvl.Ghost.DX}
		}
		if s, ok := ecs.Get(w, g, component.ShooterComponent.Kind()); ok {
			s.Enabled = lvl.Ranged
		}
	}

	ClearBullets(w)

	w.Events().Push(ecs.Event{Type: ecs.EventLevelLoaded, Data: LevelEvent{Index: state.Level, Name: lvl.Name}})
}

// AdvanceLevel moves to the next level, or marks the game won and halts the
// world when the last level has been cleared.
func AdvanceLevel(w *ecs.World) {
	state, stage, ok := State(w)
	if !ok {
		return
	}
	state.Transitioning = false
	state.TransitionFrames = 0
	state.Level++
	if state.Level >= len(stage.Levels) {
		state.Level = len(stage.Levels) - 1
		state.Won = true
		w.Events().Push(ecs.Event{Type: ecs.EventGameWon})
		w.Halt()
		return
	}
	ResetLevel(w)
}

// ClearBullets destroys every bullet in the world.
func ClearBullets(w *ecs.World) {
	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, _ *component.Bullet) {
		ecs.DestroyEntity(w, e)
	})
}

// State returns the game state and stage singletons.
func State(w *ecs.World) (*component.GameState, *component.Stage, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	state, ok := ecs.Get(w, e, component.GameStateComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	stage, ok := ecs.Get(w, e, component.StageComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return state, stage, true
}

// Player returns the player entity.
func Player(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerComponent.Kind())
}

// Ghost returns the enemy entity.
func Ghost(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.EnemyComponent.Kind())
}
