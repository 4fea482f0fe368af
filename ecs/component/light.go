package component

import "github.com/milk9111/sceneloader/scene"

type Light struct {
	Type            scene.LightType
	Rays            int
	Distance        float64
	DirectionDegree float64
	ConeDegree      float64
	SoftnessLength  float64
	Static          bool
	XRay            bool
	Color           scene.Color
}

var LightComponent = NewComponent[Light]()
