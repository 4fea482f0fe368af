package ecs

import (
	"testing"

	"github.com/milk9111/sceneloader/ecs/component"
)

type position struct{ X, Y float64 }
type tag struct{ Value string }

var (
	positionComponent = component.NewComponent[position]()
	tagComponent      = component.NewComponent[tag]()
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
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if w.Len() != c.create-1 {
					t.Fatalf("expected %d live entities, got %d", c.create-1, w.Len())
				}
			}
		})
	}
}

func TestZeroEntityIsNeverAlive(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	var zero Entity
	if zero.Valid() || w.IsAlive(zero) {
		t.Fatalf("zero entity must not be valid or alive")
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	if err := Add(w, a, positionComponent.Kind(), &position{X: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	w.DestroyEntity(a)

	b := w.CreateEntity()
	if b == a {
		t.Fatalf("reused id must carry a new generation")
	}
	if w.IsAlive(a) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, b, positionComponent.Kind()); ok {
		t.Fatalf("new entity inherited a component from the destroyed one")
	}
	if err := Add(w, a, positionComponent.Kind(), &position{}); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	mustAdd(t, Add(w, e1, positionComponent.Kind(), &position{X: 1}))
	mustAdd(t, Add(w, e2, positionComponent.Kind(), &position{X: 2}))
	mustAdd(t, Add(w, e2, tagComponent.Kind(), &tag{Value: "two"}))
	mustAdd(t, Add(w, e3, tagComponent.Kind(), &tag{Value: "three"}))

	if got := toSet(w.Query(positionComponent.Kind())); len(got) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got))
	}
	both := w.Query(positionComponent.Kind(), tagComponent.Kind())
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("expected only e2 to match both kinds, got %v", both)
	}

	p, ok := Get(w, e1, positionComponent.Kind())
	if !ok || p.X != 1 {
		t.Fatalf("unexpected position for e1: %+v %v", p, ok)
	}
	p.X = 10
	if p2 := MustGet(w, e1, positionComponent.Kind()); p2.X != 10 {
		t.Fatalf("components must be stored by pointer")
	}

	if !Remove(w, e2, tagComponent.Kind()) {
		t.Fatalf("remove should report true")
	}
	if Has(w, e2, tagComponent.Kind()) {
		t.Fatalf("name should be gone from e2")
	}
	if len(w.Query(positionComponent.Kind(), tagComponent.Kind())) != 0 {
		t.Fatalf("query should be empty after remove")
	}

	if err := Add[position](w, e1, positionComponent.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var bad component.ComponentKind[position]
	if err := Add(w, e1, bad, &position{}); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestMustGetPanics(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing component")
		}
	}()
	MustGet(w, e, positionComponent.Kind())
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		mustAdd(t, Add(w, e, positionComponent.Kind(), &position{X: float64(i)}))
		if i%2 == 0 {
			mustAdd(t, Add(w, e, tagComponent.Kind(), &tag{Value: "even"}))
		}
	}

	sum := 0.0
	ForEach(w, positionComponent.Kind(), func(_ Entity, p *position) {
		sum += p.X
	})
	if sum != 3 {
		t.Fatalf("expected sum 3, got %v", sum)
	}

	count := 0
	ForEach2(w, positionComponent.Kind(), tagComponent.Kind(), func(_ Entity, p *position, n *tag) {
		if n.Value != "even" || int(p.X)%2 != 0 {
			t.Fatalf("unexpected pair %+v %+v", p, n)
		}
		count++
	})
	if count != 2 {
		t.Fatalf("expected 2 pairs, got %d", count)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		mustAdd(t, Add(w, e, positionComponent.Kind(), &position{X: float64(i)}))
	}
	ForEach(w, positionComponent.Kind(), func(e Entity, _ *position) {
		w.DestroyEntity(e)
	})
	if w.Len() != 0 {
		t.Fatalf("expected all entities destroyed, %d left", w.Len())
	}
}

func TestListenerFiresOnceBeforeComponentsDrop(t *testing.T) {
	w := NewWorld()
	var added, removed []Entity
	var seen string
	w.AddEntityListener(EntityListenerFuncs{
		Added: func(_ *World, e Entity) { added = append(added, e) },
		Removed: func(w *World, e Entity) {
			removed = append(removed, e)
			if n, ok := Get(w, e, tagComponent.Kind()); ok {
				seen = n.Value
			}
		},
	})

	e := w.CreateEntity()
	mustAdd(t, Add(w, e, tagComponent.Kind(), &tag{Value: "doomed"}))
	w.DestroyEntity(e)
	w.DestroyEntity(e)

	if len(added) != 1 || len(removed) != 1 {
		t.Fatalf("expected one added and one removed call, got %d and %d", len(added), len(removed))
	}
	if seen != "doomed" {
		t.Fatalf("listener should read components before they drop, got %q", seen)
	}
}

func TestClearNotifiesInDescendingIDOrder(t *testing.T) {
	w := NewWorld()
	var removed []Entity
	w.AddEntityListener(EntityListenerFuncs{
		Removed: func(_ *World, e Entity) { removed = append(removed, e) },
	})

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	mustAdd(t, Add(w, b, positionComponent.Kind(), &position{}))
	w.Events().Push(Event{Type: "pending"})

	w.Clear()

	if len(removed) != 3 || removed[0] != c || removed[1] != b || removed[2] != a {
		t.Fatalf("expected descending id removal, got %v", removed)
	}
	if w.Len() != 0 || w.IsAlive(a) || w.IsAlive(c) {
		t.Fatalf("world should be empty after Clear")
	}
	if len(w.Query(positionComponent.Kind())) != 0 {
		t.Fatalf("stores should be empty after Clear")
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("events should be dropped by Clear, got %v", evts)
	}

	next := w.CreateEntity()
	if next == a {
		t.Fatalf("handle from before Clear must not be reissued")
	}
}

func TestClearOrderFollowsReusedIDs(t *testing.T) {
	w := NewWorld()
	var removed []Entity
	w.AddEntityListener(EntityListenerFuncs{
		Removed: func(_ *World, e Entity) { removed = append(removed, e) },
	})

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.DestroyEntity(a)
	removed = nil
	d := w.CreateEntity()
	if d.id() != a.id() {
		t.Fatalf("expected id %d to be reused, got %s", a.id(), d)
	}

	w.Clear()

	want := []Entity{c, b, d}
	if len(removed) != len(want) {
		t.Fatalf("expected %d removals, got %v", len(want), removed)
	}
	for i := range want {
		if removed[i] != want[i] {
			t.Fatalf("removal %d: expected %s, got %s", i, want[i], removed[i])
		}
	}
}

type countingSystem struct {
	order *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.order = append(*s.order, s.name) }

func TestUpdateRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(countingSystem{order: &order, name: "first"})
	w.AddSystem(countingSystem{order: &order, name: "second"})
	w.Events().Push(Event{Type: EventSceneLoaded})

	w.Update()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected system order %v", order)
	}
	if len(w.Systems()) != 2 {
		t.Fatalf("expected 2 systems")
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("Update should flush events")
	}
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	e2 := w.CreateEntity()
	if e2.String() != "1v1" {
		t.Fatalf("unexpected entity string %q", e2.String())
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}
