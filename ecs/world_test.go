package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/bonk/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if n := countAlive(w, ents); n != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, n)
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if n := countAlive(w, ents); n != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, n)
				}
			}
		})
	}
}

func countAlive(w *World, ents []Entity) int {
	n := 0
	for _, e := range ents {
		if IsAlive(w, e) {
			n++
		}
	}
	return n
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	again := CreateEntity(w)

	if got := first.String(); got != "1#0" {
		t.Fatalf("expected 1#0, got %s", got)
	}
	if got := again.String(); got != "1#1" {
		t.Fatalf("expected 1#1 for the recycled slot, got %s", got)
	}
}

func TestRecycledEntityIsNotTheOldHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	alive := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"invalid_kind", Add(w, alive, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
		{"nil_value", Add[int](w, alive, h.Kind(), nil), component.ErrNilComponent},
		{"dead_entity", Add(w, dead, h.Kind(), intPtr(1)), component.ErrEntityNotAlive},
		{"ok", Add(w, alive, h.Kind(), intPtr(1)), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}

	if err := Add[int](w, alive, h.Kind(), nil); !strings.Contains(err.Error(), "int") {
		t.Fatalf("expected the component type in %q", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if Count(w, h2.Kind()) != 2 {
					t.Fatalf("expected count 2, got %d", Count(w, h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	t.Run("order_and_filter", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
			t.Fatalf("expected [e1 e3], got %v", ents)
		}
		if _, ok := toSet(ents)[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		var ents []Entity
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
				t.Fatalf("add failed: %v", err)
			}
			ents = append(ents, e)
		}

		var seen []int
		ForEach(w, h.Kind(), func(e Entity, v *int) {
			seen = append(seen, *v)
			if *v == 0 {
				// later entities are skipped once destroyed
				DestroyEntity(w, ents[2])
			}
		})
		if len(seen) != 3 || seen[0] != 0 || seen[1] != 1 || seen[2] != 3 {
			t.Fatalf("expected [0 1 3], got %v", seen)
		}
		if Count(w, h.Kind()) != 3 {
			t.Fatalf("expected 3 left, got %d", Count(w, h.Kind()))
		}
	})

	t.Run("remove_keeps_order", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		var ents []Entity
		for i := 0; i < 5; i++ {
			e := CreateEntity(w)
			if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
				t.Fatalf("add failed: %v", err)
			}
			ents = append(ents, e)
		}
		Remove(w, ents[1], h.Kind())

		var seen []int
		ForEach(w, h.Kind(), func(_ Entity, v *int) { seen = append(seen, *v) })
		want := []int{0, 2, 3, 4}
		if len(seen) != len(want) {
			t.Fatalf("expected %v, got %v", want, seen)
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, seen)
			}
		}
	})
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]().Kind()
	kb := component.NewComponent[string]().Kind()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb, stringPtr("two")); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, kb, stringPtr("three")); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, _ *string) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entity in empty store")
	}

	CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	if err := Add(w, e2, h.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}
	if got, ok := First(w, h.Kind()); !ok || got != e2 {
		t.Fatalf("expected e2, got %v ok=%v", got, ok)
	}
}

type countSystem struct {
	calls *[]string
	name  string
	halt  bool
}

func (s countSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
	if s.halt {
		w.Halt()
	}
}

func TestSchedulerStopsWhenHalted(t *testing.T) {
	var calls []string
	sched := NewScheduler(
		countSystem{calls: &calls, name: "a"},
		nil,
		countSystem{calls: &calls, name: "b", halt: true},
		countSystem{calls: &calls, name: "c"},
	)
	if len(sched.Systems()) != 3 {
		t.Fatalf("expected nil system to be skipped, got %d systems", len(sched.Systems()))
	}

	w := NewWorld()
	sched.Update(w)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("expected [a b], got %v", calls)
	}

	sched.Update(w)
	if len(calls) != 2 {
		t.Fatalf("halted world must not be updated, got %v", calls)
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Fatalf("expected nil from empty queue")
	}
	q.Push(Event{Type: EventLevelLoaded})
	q.Push(Event{Type: EventGameWon})

	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventLevelLoaded || got[1].Type != EventGameWon {
		t.Fatalf("unexpected events %v", got)
	}
	if len(q.Drain()) != 0 {
		t.Fatalf("queue should be empty after drain")
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}
