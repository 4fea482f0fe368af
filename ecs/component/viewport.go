package component

// Viewport is the scene root's camera. The world is stretched to fill
// Width x Height screen pixels.
type Viewport struct {
	Width   int
	Height  int
	CameraX float64
	CameraY float64
	Zoom    float64
}

var ViewportComponent = NewComponent[Viewport]()
