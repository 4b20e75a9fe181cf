package system

import (
	"testing"
	"time"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
	"github.com/milk9111/bonk/levels"
	"github.com/milk9111/bonk/prefabs"
)

// scriptedKeys replays one Input per update, then repeats the last one.
type scriptedKeys struct {
	frames []component.Input
	next   int
}

func (s *scriptedKeys) Snapshot() component.Input {
	if len(s.frames) == 0 {
		return component.Input{}
	}
	i := s.next
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	s.next++
	return s.frames[i]
}

func hold(in component.Input) *scriptedKeys {
	return &scriptedKeys{frames: []component.Input{in}}
}

func testConfig() *prefabs.Config {
	return &prefabs.Config{
		Player: &prefabs.PlayerSpec{
			Name:        "chief",
			Spawn:       prefabs.PointSpec{X: 50, Y: 470},
			Collider:    prefabs.ColliderSpec{Width: 80, Height: 110},
			MoveSpeed:   3,
			Gravity:     0.8,
			JumpSpeed:   -12,
			Health:      100,
			AttackRange: 40,
			Sprite:      prefabs.SpriteSpec{Image: "chief.png"},
			AttackEffect: prefabs.AttackEffectSpec{
				Image: "bonk.png", Width: 150, Height: 150, OffsetY: -50,
			},
		},
		Ghost: &prefabs.GhostSpec{
			Name:          "ghost",
			Collider:      prefabs.ColliderSpec{Width: 160, Height: 200},
			ContactDamage: 10,
			GraceFrames:   60,
			Patrol:        prefabs.PatrolSpec{MinX: 400, MaxX: 600},
			Bullet:        prefabs.BulletSpec{Width: 10, Height: 5, Speed: 4, Damage: 5, Period: 2 * time.Second},
			Sprite:        prefabs.SpriteSpec{Image: "ghost.png"},
			Script:        "ghost.tengo",
		},
		Rules: &prefabs.RulesSpec{
			GroundHeight:    20,
			TrapDamage:      1,
			TransitionDelay: time.Second,
		},
		Levels: &levels.Set{
			Width:  800,
			Height: 600,
			Levels: []levels.Level{
				{Name: "one", Background: "background1.png", Ghost: levels.GhostSpawn{X: 500, Y: 325, DX: 1}},
				{
					Name:      "two",
					Ranged:    true,
					Platforms: []levels.Rect{{X: 250, Y: 480, Width: 100, Height: 40}},
					Ghost:     levels.GhostSpawn{X: 600, Y: 325, DX: 2},
				},
				{Name: "three", Ghost: levels.GhostSpawn{X: 450, Y: 325, DX: -2}},
			},
		},
	}
}

// newTestWorld builds and starts a world at level 0. edit may adjust the
// config first.
func newTestWorld(t *testing.T, edit func(*prefabs.Config)) *ecs.World {
	t.Helper()
	cfg := testConfig()
	if edit != nil {
		edit(cfg)
	}
	w, err := entity.BuildWorld(cfg, 60)
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	entity.StartGame(w)
	w.Events().Drain()
	return w
}

func gotoLevel(t *testing.T, w *ecs.World, level int) {
	t.Helper()
	state, _, ok := entity.State(w)
	if !ok {
		t.Fatalf("no game state")
	}
	state.Level = level
	entity.ResetLevel(w)
	w.Events().Drain()
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %v is missing a component", e)
	}
	return v
}

func player(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, ok := entity.Player(w)
	if !ok {
		t.Fatalf("no player")
	}
	return e
}

func ghost(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, ok := entity.Ghost(w)
	if !ok {
		t.Fatalf("no ghost")
	}
	return e
}

func placePlayer(t *testing.T, w *ecs.World, x, y float64) {
	t.Helper()
	tr := mustGet(t, w, player(t, w), component.TransformComponent.Kind())
	tr.X, tr.Y = x, y
}

func placeGhost(t *testing.T, w *ecs.World, x, y, dx float64) {
	t.Helper()
	g := ghost(t, w)
	tr := mustGet(t, w, g, component.TransformComponent.Kind())
	tr.X, tr.Y = x, y
	mustGet(t, w, g, component.VelocityComponent.Kind()).DX = dx
}

func health(t *testing.T, w *ecs.World) int {
	t.Helper()
	return mustGet(t, w, player(t, w), component.HealthComponent.Kind()).Current
}

func setHealth(t *testing.T, w *ecs.World, hp int) {
	t.Helper()
	mustGet(t, w, player(t, w), component.HealthComponent.Kind()).Current = hp
}

func runFrames(w *ecs.World, sched *ecs.Scheduler, n int) {
	for i := 0; i < n; i++ {
		sched.Update(w)
	}
}

func hasEvent(events []ecs.Event, typ ecs.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}
