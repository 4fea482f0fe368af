package system

import (
	"fmt"
	"sort"

	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
)

// LayerSystem resolves every child's layer name to an index in its parent's
// LayerMap and re-sorts each composite's children into paint order: layer
// index ascending, then z ascending. Equal keys keep their previous order.
//
// Composites are visited as a flat list, not as a tree.
type LayerSystem struct {
	keys []childKey
}

type childKey struct {
	child uint64
	z     *component.ZIndex
}

func NewLayerSystem() *LayerSystem {
	return &LayerSystem{}
}

func (s *LayerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.CompositeTransformComponent.Kind()) {
		s.process(w, e)
	}
}

func (s *LayerSystem) process(w *ecs.World, e ecs.Entity) {
	node, ok := ecs.Get(w, e, component.NodeComponent.Kind())
	if !ok {
		panic(fmt.Sprintf("layer: composite %s has no node component", e))
	}
	layers, _ := ecs.Get(w, e, component.LayerMapComponent.Kind())

	s.keys = s.keys[:0]
	for _, child := range node.Children {
		z, ok := ecs.Get(w, ecs.Entity(child), component.ZIndexComponent.Kind())
		if !ok {
			panic(fmt.Sprintf("layer: child %s of %s has no z-index component", ecs.Entity(child), e))
		}
		z.LayerIndex = layers.Index(z.LayerName)
		s.keys = append(s.keys, childKey{child: child, z: z})
	}

	sort.SliceStable(s.keys, func(i, j int) bool {
		a, b := s.keys[i].z, s.keys[j].z
		if a.LayerIndex != b.LayerIndex {
			return a.LayerIndex < b.LayerIndex
		}
		return a.Z < b.Z
	})
	for i, k := range s.keys {
		node.Children[i] = k.child
	}
	clear(s.keys)
}
