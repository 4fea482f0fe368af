package component

// Transform is local to the parent's coordinate frame. Rotation is in degrees.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	OriginX  float64
	OriginY  float64
}

// CompositeTransform marks a container with its own coordinate frame. Its
// presence selects the entities the layer pass visits.
type CompositeTransform struct {
	Transform bool
	ScissorX  float64
	ScissorY  float64
	ScissorW  float64
	ScissorH  float64
}

var (
	TransformComponent          = NewComponent[Transform]()
	CompositeTransformComponent = NewComponent[CompositeTransform]()
)
