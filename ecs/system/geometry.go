package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bonk/ecs"
	"github.com/milk9111/bonk/ecs/component"
	"github.com/milk9111/bonk/levels"
)

// Boxes are cp.BB values in screen coordinates: B is the top edge (smaller
// y) and T the bottom edge.

func boxOf(t *component.Transform, b *component.Body) cp.BB {
	return cp.BB{L: t.X, B: t.Y, R: t.X + b.Width, T: t.Y + b.Height}
}

func rectBox(r levels.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

func entityBox(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	return boxOf(t, b), true
}

// overlaps is a strict AABB test: boxes that only share an edge do not
// overlap.
func overlaps(a, b cp.BB) bool {
	return a.L < b.R && a.R > b.L && a.B < b.T && a.T > b.B
}
