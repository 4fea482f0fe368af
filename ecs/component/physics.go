package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sceneloader/scene"
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Space is the space Body was added to; it goes stale once the scene reloads.
type PhysicsBody struct {
	Space       *cp.Space
	Body        *cp.Body
	Shape       *cp.Shape
	BodyType    scene.BodyType
	Width       float64
	Height      float64
	Mass        float64
	Friction    float64
	Restitution float64
	Sensor      bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
