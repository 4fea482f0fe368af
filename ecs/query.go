package ecs

import "github.com/milk9111/sceneloader/ecs/component"

// Query returns the live entities carrying every given kind. The result is a
// fresh slice in the storage order of the smallest matching set.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s, ok := w.stores[k.ID()]
		if !ok || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, e := range smallest.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
