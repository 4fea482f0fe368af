package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
)

// printTree writes one line per entity under root, children indented below
// their parent in paint order.
func printTree(out io.Writer, w *ecs.World, root ecs.Entity) error {
	bw := bufio.NewWriter(out)
	writeNode(bw, w, root, nil, 0)
	return bw.Flush()
}

// layers is the parent's layer map, nil for the root.
func writeNode(out io.Writer, w *ecs.World, e ecs.Entity, layers *component.LayerMap, depth int) {
	fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), describe(w, e, layers))

	node, ok := ecs.Get(w, e, component.NodeComponent.Kind())
	if !ok {
		return
	}
	own, _ := ecs.Get(w, e, component.LayerMapComponent.Kind())
	for _, c := range node.Children {
		writeNode(out, w, ecs.Entity(c), own, depth+1)
	}
}

func describe(w *ecs.World, e ecs.Entity, layers *component.LayerMap) string {
	var b strings.Builder
	if m, ok := ecs.Get(w, e, component.MainItemComponent.Kind()); ok {
		b.WriteString(m.Type.String())
		switch {
		case m.Identifier != "":
			fmt.Fprintf(&b, " %q", m.Identifier)
		case m.Name != "":
			fmt.Fprintf(&b, " %q", m.Name)
		}
	} else {
		b.WriteString("entity")
	}
	fmt.Fprintf(&b, " [%s]", e)
	if z, ok := ecs.Get(w, e, component.ZIndexComponent.Kind()); ok {
		layer := z.LayerName
		if layer == "" {
			layer = "-"
		}
		fmt.Fprintf(&b, " layer=%s(%d) z=%d", layer, z.LayerIndex, z.Z)
		if l, ok := layers.Layer(z.LayerName); ok && !l.IsVisible {
			b.WriteString(" hidden")
		}
	}
	if lm, ok := ecs.Get(w, e, component.LayerMapComponent.Kind()); ok {
		names := make([]string, len(lm.Layers))
		for i, l := range lm.Layers {
			names[i] = l.LayerName
		}
		fmt.Fprintf(&b, " layers=%s", strings.Join(names, ","))
	}
	return b.String()
}
