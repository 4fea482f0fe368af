package component

import "github.com/hajimehoshi/ebiten/v2"

// TextureRegion is the resolved image of an image item.
type TextureRegion struct {
	RegionName string
	Image      *ebiten.Image
	Width      int
	Height     int
	Repeat     bool
	Polygon    bool
}

var TextureRegionComponent = NewComponent[TextureRegion]()
