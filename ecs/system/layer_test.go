package system

import (
	"testing"

	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"github.com/milk9111/sceneloader/scene"
)

func newContainer(t *testing.T, w *ecs.World, layers ...string) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	vos := make([]scene.LayerItemVO, len(layers))
	for i, name := range layers {
		vos[i] = scene.LayerItemVO{LayerName: name, IsVisible: true}
	}
	must(t, ecs.Add(w, e, component.CompositeTransformComponent.Kind(), &component.CompositeTransform{}))
	must(t, ecs.Add(w, e, component.NodeComponent.Kind(), &component.Node{}))
	must(t, ecs.Add(w, e, component.LayerMapComponent.Kind(), component.NewLayerMap(vos)))
	return e
}

func newChild(t *testing.T, w *ecs.World, parent ecs.Entity, layer string, z int) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	must(t, ecs.Add(w, e, component.ZIndexComponent.Kind(), &component.ZIndex{LayerName: layer, Z: z}))
	ecs.MustGet(w, parent, component.NodeComponent.Kind()).AddChild(uint64(e))
	return e
}

func children(w *ecs.World, parent ecs.Entity) []ecs.Entity {
	node := ecs.MustGet(w, parent, component.NodeComponent.Kind())
	out := make([]ecs.Entity, len(node.Children))
	for i, c := range node.Children {
		out[i] = ecs.Entity(c)
	}
	return out
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLayerSystemOrdersByLayerThenZ(t *testing.T) {
	w := ecs.NewWorld()
	root := newContainer(t, w, "bg", "mid", "fg")

	fg0 := newChild(t, w, root, "fg", 0)
	bg5 := newChild(t, w, root, "bg", 5)
	mid1 := newChild(t, w, root, "mid", 1)
	bg2 := newChild(t, w, root, "bg", 2)
	fgNeg := newChild(t, w, root, "fg", -3)

	NewLayerSystem().Update(w)

	want := []ecs.Entity{bg2, bg5, mid1, fgNeg, fg0}
	got := children(w, root)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s (order %v)", i, want[i], got[i], got)
		}
	}

	if z := ecs.MustGet(w, fg0, component.ZIndexComponent.Kind()); z.LayerIndex != 2 {
		t.Fatalf("expected fg layer index 2, got %d", z.LayerIndex)
	}
}

func TestLayerSystemIsStableForTies(t *testing.T) {
	w := ecs.NewWorld()
	root := newContainer(t, w, "main")

	a := newChild(t, w, root, "main", 1)
	b := newChild(t, w, root, "main", 1)
	c := newChild(t, w, root, "main", 0)
	d := newChild(t, w, root, "main", 1)

	ls := NewLayerSystem()
	for i := 0; i < 3; i++ {
		ls.Update(w)
		got := children(w, root)
		want := []ecs.Entity{c, a, b, d}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("pass %d: expected %v, got %v", i, want, got)
			}
		}
	}
}

func TestLayerSystemUnknownLayerResolvesToZero(t *testing.T) {
	w := ecs.NewWorld()
	root := newContainer(t, w, "bg", "fg")

	fg := newChild(t, w, root, "fg", 0)
	lost := newChild(t, w, root, "nowhere", 7)
	unnamed := newChild(t, w, root, "", 3)

	NewLayerSystem().Update(w)

	for _, e := range []ecs.Entity{lost, unnamed} {
		if z := ecs.MustGet(w, e, component.ZIndexComponent.Kind()); z.LayerIndex != 0 {
			t.Fatalf("%s: expected layer index 0, got %d", e, z.LayerIndex)
		}
	}
	got := children(w, root)
	if got[0] != unnamed || got[1] != lost || got[2] != fg {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestLayerSystemWithoutLayerMap(t *testing.T) {
	w := ecs.NewWorld()
	root := w.CreateEntity()
	must(t, ecs.Add(w, root, component.CompositeTransformComponent.Kind(), &component.CompositeTransform{}))
	must(t, ecs.Add(w, root, component.NodeComponent.Kind(), &component.Node{}))

	a := newChild(t, w, root, "fg", 2)
	b := newChild(t, w, root, "bg", 1)

	NewLayerSystem().Update(w)

	got := children(w, root)
	if got[0] != b || got[1] != a {
		t.Fatalf("expected z order without a layer map, got %v", got)
	}
	if z := ecs.MustGet(w, a, component.ZIndexComponent.Kind()); z.LayerIndex != 0 {
		t.Fatalf("expected layer index 0, got %d", z.LayerIndex)
	}
}

func TestLayerSystemVisitsNestedCompositesFlat(t *testing.T) {
	w := ecs.NewWorld()
	root := newContainer(t, w, "a", "b")
	inner := newContainer(t, w, "x", "y")
	must(t, ecs.Add(w, inner, component.ZIndexComponent.Kind(), &component.ZIndex{LayerName: "b"}))
	ecs.MustGet(w, root, component.NodeComponent.Kind()).AddChild(uint64(inner))
	first := newChild(t, w, root, "a", 0)

	y := newChild(t, w, inner, "y", 0)
	x := newChild(t, w, inner, "x", 9)

	NewLayerSystem().Update(w)

	if got := children(w, root); got[0] != first || got[1] != inner {
		t.Fatalf("unexpected root order %v", got)
	}
	if got := children(w, inner); got[0] != x || got[1] != y {
		t.Fatalf("unexpected inner order %v", got)
	}
}

func TestLayerSystemPanicsOnMissingZIndex(t *testing.T) {
	w := ecs.NewWorld()
	root := newContainer(t, w, "main")
	bare := w.CreateEntity()
	ecs.MustGet(w, root, component.NodeComponent.Kind()).AddChild(uint64(bare))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for child without z-index")
		}
	}()
	NewLayerSystem().Update(w)
}

func TestLayerSystemPanicsOnMissingNode(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	must(t, ecs.Add(w, e, component.CompositeTransformComponent.Kind(), &component.CompositeTransform{}))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for composite without node")
		}
	}()
	NewLayerSystem().Update(w)
}

func TestLayerSystemEmptyWorld(t *testing.T) {
	NewLayerSystem().Update(ecs.NewWorld())
	var ls *LayerSystem
	ls.Update(ecs.NewWorld())
}
