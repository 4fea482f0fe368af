package component

// ZIndex is a child's paint-order key. LayerIndex is derived from LayerName
// by the layer pass and is only meaningful after it has run.
type ZIndex struct {
	LayerName  string
	Z          int
	LayerIndex int
}

var ZIndexComponent = NewComponent[ZIndex]()
