// levelcheck validates the prefab and level YAML and runs every level
// headless with no input, reporting layout problems and idle damage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
	"github.com/milk9111/bonk/ecs/system"
	"github.com/milk9111/bonk/levels"
	"github.com/milk9111/bonk/prefabs"
)

const tps = 60

type idleKeys struct{}

func (idleKeys) Snapshot() component.Input { return component.Input{} }

type report struct {
	Index    int
	Name     string
	Warnings []string
	Health   int
	Lost     bool
	Bullets  int
}

func main() {
	set := flag.String("set", levels.DefaultSet, "level set in levels/")
	frames := flag.Int("frames", 10*tps, "idle frames to simulate per level")
	strict := flag.Bool("strict", false, "exit non-zero on warnings")
	flag.Parse()

	cfg, err := prefabs.LoadConfig(*set)
	if err != nil {
		log.Fatal(err)
	}

	warned := false
	for i := range cfg.Levels.Levels {
		r, err := checkLevel(cfg, i, *frames)
		if err != nil {
			log.Fatalf("level %d: %v", i, err)
		}
		fmt.Printf("level %d (%s): health %d after %d idle frames, %d bullets in flight", r.Index, r.Name, r.Health, *frames, r.Bullets)
		if r.Lost {
			fmt.Print(", player died")
		}
		fmt.Println()
		for _, w := range r.Warnings {
			fmt.Printf("  warning: %s\n", w)
			warned = true
		}
	}
	if warned && *strict {
		os.Exit(1)
	}
}

func checkLevel(cfg *prefabs.Config, index, frames int) (report, error) {
	lvl := cfg.Levels.Levels[index]
	r := report{Index: index, Name: lvl.Name, Warnings: layoutWarnings(cfg, lvl)}

	w, err := entity.BuildWorld(cfg, tps)
	if err != nil {
		return r, err
	}
	state, _, _ := entity.State(w)
	state.Level = index
	entity.StartGame(w)

	sched := system.NewGameplayScheduler(idleKeys{})
	for f := 0; f < frames && !w.Halted(); f++ {
		sched.Update(w)
	}
	w.Events().Drain()

	if g, ok := entity.Ghost(w); ok && !ecs.Has(w, g, component.BrainComponent.Kind()) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("ghost script %q failed to load, the ghost never moves or shoots", cfg.Ghost.Script))
	}
	if p, ok := entity.Player(w); ok {
		if h, ok := ecs.Get(w, p, component.HealthComponent.Kind()); ok {
			r.Health = h.Current
		}
	}
	r.Lost = state.Lost
	r.Bullets = ecs.Count(w, component.BulletComponent.Kind())
	return r, nil
}

func layoutWarnings(cfg *prefabs.Config, lvl levels.Level) []string {
	var out []string
	width, height := cfg.Levels.Width, cfg.Levels.Height
	inside := func(r levels.Rect) bool {
		return r.X >= 0 && r.Y >= 0 && r.X+r.Width <= width && r.Y+r.Height <= height
	}
	for i, p := range lvl.Platforms {
		if !inside(p) {
			out = append(out, fmt.Sprintf("platform %d is off screen", i))
		}
	}
	floor := height - cfg.Rules.GroundHeight
	for i, t := range lvl.Traps {
		if !inside(t) {
			out = append(out, fmt.Sprintf("trap %d is off screen", i))
		}
		if t.Y >= floor {
			out = append(out, fmt.Sprintf("trap %d starts at or below the floor and cannot be touched", i))
		}
	}
	band := cfg.Ghost.Patrol
	if lvl.Ghost.X < band.MinX || lvl.Ghost.X > band.MaxX {
		out = append(out, fmt.Sprintf("ghost spawns at x=%g outside its patrol band %g..%g", lvl.Ghost.X, band.MinX, band.MaxX))
	}
	return out
}
