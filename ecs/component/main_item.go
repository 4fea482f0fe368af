package component

import "github.com/milk9111/sceneloader/scene"

// MainItem marks an entity as a first-class scene item.
type MainItem struct {
	Type       scene.ItemType
	UniqueID   int
	Identifier string
	Name       string
	Tags       []string
	CustomVars map[string]string
}

// HasTag reports whether the item carries tag.
func (m *MainItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var MainItemComponent = NewComponent[MainItem]()
