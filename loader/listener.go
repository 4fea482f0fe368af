package loader

import (
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
)

// detachListener unlinks a destroyed entity from its parent's Node. The
// parent's remaining children keep their order.
type detachListener struct{}

func (detachListener) EntityAdded(*ecs.World, ecs.Entity) {}

func (detachListener) EntityRemoved(w *ecs.World, e ecs.Entity) {
	parent, ok := ecs.Get(w, e, component.ParentNodeComponent.Kind())
	if !ok {
		return
	}
	node, ok := ecs.Get(w, ecs.Entity(parent.Parent), component.NodeComponent.Kind())
	if !ok {
		return
	}
	node.RemoveChild(uint64(e))
}
