package component

const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

type Dimensions struct {
	Width  float64
	Height float64
}

var DimensionsComponent = NewComponent[Dimensions]()
