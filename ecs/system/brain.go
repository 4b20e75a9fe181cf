package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/ecs/entity"
	"github.com/milk9111/bonk/prefabs"
)

const brainDispatchScript = `
if __phase == "patrol" {
	patrol(__engine, __state)
} else if __phase == "aim" {
	__result = aim(__engine, __state)
}
`

type brainRuntime struct {
	script   string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// Brains runs enemy behavior scripts. Each entity gets its own compiled
// program and script state. A script that fails to load is logged once and
// the entity's Brain is removed, which leaves the enemy standing still.
type Brains struct {
	cache map[ecs.Entity]*brainRuntime
}

func NewBrains() *Brains {
	return &Brains{cache: map[ecs.Entity]*brainRuntime{}}
}

// Patrol runs the script's patrol step for e.
func (b *Brains) Patrol(w *ecs.World, e ecs.Entity) {
	rt, ok := b.runtime(w, e)
	if !ok {
		return
	}
	if err := rt.run("patrol", brainEngine(w, e)); err != nil {
		log.Printf("brain: entity %v patrol: %v", e, err)
	}
}

// Aim asks the script which way e should shoot: 1 for right, -1 for left.
func (b *Brains) Aim(w *ecs.World, e ecs.Entity) (float64, bool) {
	rt, ok := b.runtime(w, e)
	if !ok {
		return 0, false
	}
	if err := rt.run("aim", brainEngine(w, e)); err != nil {
		log.Printf("brain: entity %v aim: %v", e, err)
		return 0, false
	}
	return rt.compiled.Get("__result").Float(), true
}

func (b *Brains) runtime(w *ecs.World, e ecs.Entity) (*brainRuntime, bool) {
	brain, ok := ecs.Get(w, e, component.BrainComponent.Kind())
	if !ok {
		return nil, false
	}
	if rt, ok := b.cache[e]; ok && rt.script == brain.Script {
		return rt, true
	}

	rt, err := compileBrain(brain.Script)
	if err != nil {
		log.Printf("brain: entity %v: %v", e, err)
		ecs.Remove(w, e, component.BrainComponent.Kind())
		delete(b.cache, e)
		return nil, false
	}
	b.cache[e] = rt
	return rt, true
}

func compileBrain(name string) (*brainRuntime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", name, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + brainDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__result", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %q: %w", name, err)
	}
	return &brainRuntime{
		script:   name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (rt *brainRuntime) run(phase string, engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// brainEngine exposes e's position, velocity and patrol band plus the
// player's position to the script.
func brainEngine(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	band, _ := ecs.Get(w, e, component.PatrolComponent.Kind())

	values := map[string]tengo.Object{}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if t == nil {
			return floatPair(0, 0), nil
		}
		return floatPair(t.X, t.Y), nil
	}}

	values["set_x"] = &tengo.UserFunction{Name: "set_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if t == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		x, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		t.X = x
		return tengo.TrueValue, nil
	}}

	values["get_velocity"] = &tengo.UserFunction{Name: "get_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if v == nil {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: v.DX}, nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if v == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		dx, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		v.DX = dx
		return tengo.TrueValue, nil
	}}

	values["get_band"] = &tengo.UserFunction{Name: "get_band", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if band == nil {
			return floatPair(0, 0), nil
		}
		return floatPair(band.MinX, band.MaxX), nil
	}}

	values["get_player_position"] = &tengo.UserFunction{Name: "get_player_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p, ok := entity.Player(w)
		if !ok {
			return floatPair(0, 0), nil
		}
		pt, ok := ecs.Get(w, p, component.TransformComponent.Kind())
		if !ok {
			return floatPair(0, 0), nil
		}
		return floatPair(pt.X, pt.Y), nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func floatPair(a, b float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: a}, &tengo.Float{Value: b}}}
}
