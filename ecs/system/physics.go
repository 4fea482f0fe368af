package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"github.com/milk9111/sceneloader/scene"
)

// DefaultPhysicsStep is the fixed timestep of one physics tick.
const DefaultPhysicsStep = 1.0 / 60.0

// PhysicsSystem owns the chipmunk space of the loaded scene, steps it once
// per tick and copies dynamic body poses back into Transform.
type PhysicsSystem struct {
	space *cp.Space
	step  float64
}

var _ ecs.EntityListener = (*PhysicsSystem)(nil)

func NewPhysicsSystem(step float64) *PhysicsSystem {
	if step <= 0 {
		step = DefaultPhysicsStep
	}
	return &PhysicsSystem{step: step}
}

// Reset discards the current space and, when props enables physics, creates
// a new one. It returns the new space or nil.
func (ps *PhysicsSystem) Reset(props *scene.PhysicsPropertiesVO) *cp.Space {
	if ps == nil {
		return nil
	}
	ps.space = nil
	if props == nil || !props.Enabled {
		return nil
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: float64(props.GravityX), Y: float64(props.GravityY)})
	ps.space = space
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}
	ps.space.Step(ps.step)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.BodyType == scene.BodyStatic {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X - pb.Width/2
		t.Y = pos.Y - pb.Height/2
		t.Rotation = pb.Body.Angle() / degToRad
	})
}

func (ps *PhysicsSystem) EntityAdded(*ecs.World, ecs.Entity) {}

// EntityRemoved takes the entity's body out of the current space.
func (ps *PhysicsSystem) EntityRemoved(w *ecs.World, e ecs.Entity) {
	if ps == nil || ps.space == nil {
		return
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Space != ps.space {
		return
	}
	if pb.Shape != nil {
		ps.space.RemoveShape(pb.Shape)
	}
	if pb.Body != nil {
		ps.space.RemoveBody(pb.Body)
	}
	pb.Space = nil
}
