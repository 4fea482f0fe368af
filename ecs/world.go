package ecs

import (
	"github.com/milk9111/sceneloader/ecs/component"
)

// World owns entities, components, and system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	listeners []EntityListener
	scheduler Scheduler
	events    EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity and notifies listeners.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	for _, l := range w.listeners {
		l.EntityAdded(w, e)
	}
	return e
}

// DestroyEntity notifies listeners, drops every component of e and frees its
// id. Listeners run exactly once per entity, while its components are still
// readable. Returns false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, l := range w.listeners {
		l.EntityRemoved(w, e)
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// Clear destroys every live entity. Listeners are notified in descending id
// order; ids freed earlier are reused, so this is not creation order.
func (w *World) Clear() {
	if w == nil {
		return
	}
	live := w.entities.live()
	for i := len(live) - 1; i >= 0; i-- {
		if !w.entities.isAlive(live[i]) {
			continue
		}
		for _, l := range w.listeners {
			l.EntityRemoved(w, live[i])
		}
	}
	for _, s := range w.stores {
		s.clear()
	}
	w.entities.reset()
	w.events.flush()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Entities returns all live entities in id order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

// AddEntityListener registers l for create and destroy notifications.
func (w *World) AddEntityListener(l EntityListener) {
	if w == nil || l == nil {
		return
	}
	w.listeners = append(w.listeners, l)
}

// AddComponent attaches or replaces the component of the given kind.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e, value)
	return nil
}

// GetComponent returns the component of the given kind.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// HasComponent reports whether e carries a component of the given kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

// RemoveComponent detaches the component of the given kind.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil {
		return false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return false
	}
	return s.Remove(e)
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
