package component

import "github.com/milk9111/sceneloader/scene"

type Tint struct {
	Color scene.Color
}

var TintComponent = NewComponent[Tint]()
