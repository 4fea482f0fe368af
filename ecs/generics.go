package ecs

import "github.com/milk9111/sceneloader/ecs/component"

// Add attaches value to e. Components are stored by pointer so systems can
// mutate them in place.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind, value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind)
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// MustGet is Get for components whose presence is a construction invariant.
func MustGet[T any](w *World, e Entity, kind component.ComponentKind[T]) *T {
	v, ok := Get(w, e, kind)
	if !ok {
		panic("ecs: entity " + e.String() + " is missing a required component")
	}
	return v
}

// ForEach calls fn for every live entity carrying kind, in storage order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return
	}
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
