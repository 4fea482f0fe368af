package component

import "github.com/milk9111/sceneloader/scene"

// LayerMap is a composite's ordered set of named layers.
type LayerMap struct {
	Layers []scene.LayerItemVO
}

// NewLayerMap copies layers, dropping later duplicates of a name, and
// synthesizes the default layer when none remain.
func NewLayerMap(layers []scene.LayerItemVO) *LayerMap {
	m := &LayerMap{Layers: make([]scene.LayerItemVO, 0, len(layers)+1)}
	seen := make(map[string]struct{}, len(layers))
	for _, l := range layers {
		if _, dup := seen[l.LayerName]; dup {
			continue
		}
		seen[l.LayerName] = struct{}{}
		m.Layers = append(m.Layers, l)
	}
	if len(m.Layers) == 0 {
		m.Layers = append(m.Layers, scene.DefaultLayer())
	}
	return m
}

// Index returns the position of the first layer named name, or 0.
func (m *LayerMap) Index(name string) int {
	if m == nil {
		return 0
	}
	for i, l := range m.Layers {
		if l.LayerName == name {
			return i
		}
	}
	return 0
}

// Layer returns the layer named name.
func (m *LayerMap) Layer(name string) (scene.LayerItemVO, bool) {
	if m == nil {
		return scene.LayerItemVO{}, false
	}
	for _, l := range m.Layers {
		if l.LayerName == name {
			return l, true
		}
	}
	return scene.LayerItemVO{}, false
}

var LayerMapComponent = NewComponent[LayerMap]()
