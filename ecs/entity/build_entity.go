package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"github.com/milk9111/sceneloader/scene"
	"go.uber.org/zap"
)

func addCommon(w *ecs.World, e ecs.Entity, typ scene.ItemType, m *scene.MainItemVO, ctx *buildContext) error {
	if err := ecs.Add(w, e, component.MainItemComponent.Kind(), &component.MainItem{
		Type:       typ,
		UniqueID:   m.UniqueID,
		Identifier: m.ItemIdentifier,
		Name:       m.ItemName,
		Tags:       append([]string(nil), m.Tags...),
		CustomVars: ctx.vars,
	}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transformFor(m)); err != nil {
		return err
	}
	tint := scene.White
	if m.Tint != nil {
		tint = *m.Tint
	}
	if err := ecs.Add(w, e, component.TintComponent.Kind(), &component.Tint{Color: tint}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.ZIndexComponent.Kind(), &component.ZIndex{
		LayerName: m.LayerName,
		Z:         m.ZIndex,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ParentNodeComponent.Kind(), &component.ParentNode{Parent: uint64(ctx.parent)})
}

// transformFor treats a zero scale as unset; older exports omit scale when it
// is 1.
func transformFor(m *scene.MainItemVO) *component.Transform {
	t := &component.Transform{
		X:        float64(m.X),
		Y:        float64(m.Y),
		ScaleX:   float64(m.ScaleX),
		ScaleY:   float64(m.ScaleY),
		Rotation: float64(m.Rotation),
		OriginX:  float64(m.OriginX),
		OriginY:  float64(m.OriginY),
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return t
}

func addDimensions(w *ecs.World, e ecs.Entity, width, height float64) error {
	if width <= 0 {
		width = component.DefaultWidth
	}
	if height <= 0 {
		height = component.DefaultHeight
	}
	return ecs.Add(w, e, component.DimensionsComponent.Kind(), &component.Dimensions{Width: width, Height: height})
}

func addImage(w *ecs.World, e ecs.Entity, vo *scene.SimpleImageVO, ctx *buildContext) error {
	if ctx.rm == nil {
		return fmt.Errorf("%w: %q (no retriever)", ErrMissingImage, vo.ImageName)
	}
	region, ok := ctx.rm.TextureRegion(vo.ImageName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingImage, vo.ImageName)
	}
	if err := ecs.Add(w, e, component.TextureRegionComponent.Kind(), &component.TextureRegion{
		RegionName: vo.ImageName,
		Image:      region.Image(),
		Width:      region.Width,
		Height:     region.Height,
		Repeat:     vo.IsRepeat,
		Polygon:    vo.IsPolygon,
	}); err != nil {
		return err
	}
	return addDimensions(w, e, float64(region.Width), float64(region.Height))
}

func addLabel(w *ecs.World, e ecs.Entity, vo *scene.LabelVO, ctx *buildContext) error {
	l := &component.Label{
		Text:      vo.Text,
		Style:     vo.Style,
		Size:      vo.Size,
		Align:     vo.Align,
		Multiline: vo.Multiline,
	}
	if ctx.rm != nil {
		l.Face = ctx.rm.Font(vo.Style, vo.Size)
	}
	if err := ecs.Add(w, e, component.LabelComponent.Kind(), l); err != nil {
		return err
	}
	return addDimensions(w, e, float64(vo.Width), float64(vo.Height))
}

func addParticle(w *ecs.World, e ecs.Entity, vo *scene.ParticleEffectVO, ctx *buildContext) error {
	p := &component.Particle{EffectName: vo.ParticleName}
	if ctx.rm != nil {
		if def, ok := ctx.rm.ParticleEffect(vo.ParticleName); ok {
			p.Definition = def
		} else {
			ctx.log.Warn("particle effect not found", zap.String("effect", vo.ParticleName))
		}
	}
	if err := ecs.Add(w, e, component.ParticleComponent.Kind(), p); err != nil {
		return err
	}
	return addDimensions(w, e, 0, 0)
}

func addLight(w *ecs.World, e ecs.Entity, vo *scene.LightVO, _ *buildContext) error {
	lightType := vo.LightType
	if lightType == "" {
		lightType = scene.LightPoint
	}
	c := scene.White
	if vo.Tint != nil {
		c = *vo.Tint
	}
	if err := ecs.Add(w, e, component.LightComponent.Kind(), &component.Light{
		Type:            lightType,
		Rays:            vo.Rays,
		Distance:        float64(vo.Distance),
		DirectionDegree: float64(vo.DirectionDegree),
		ConeDegree:      float64(vo.ConeDegree),
		SoftnessLength:  float64(vo.SoftnessLength),
		Static:          vo.IsStatic,
		XRay:            vo.IsXRay,
		Color:           c,
	}); err != nil {
		return err
	}
	return addDimensions(w, e, 0, 0)
}

func addSpine(w *ecs.World, e ecs.Entity, vo *scene.SpineVO, _ *buildContext) error {
	if err := ecs.Add(w, e, component.SpineAnimationComponent.Kind(), &component.SpineAnimation{
		AnimationName:    vo.AnimationName,
		CurrentAnimation: vo.CurrentAnimationName,
	}); err != nil {
		return err
	}
	return addDimensions(w, e, 0, 0)
}

func addSpriteAnimation(w *ecs.World, e ecs.Entity, vo *scene.SpriteAnimationVO, ctx *buildContext) error {
	ranges := make(map[string]scene.Frames, len(vo.FrameRangeMap))
	for k, v := range vo.FrameRangeMap {
		ranges[k] = v
	}
	if len(ranges) == 0 && vo.Animations != "" {
		legacy, err := scene.DecodeFrames(vo.Animations)
		if err != nil {
			ctx.log.Warn("legacy animation frames ignored", zap.String("animation", vo.AnimationName), zap.Error(err))
		} else {
			ranges = legacy
		}
	}
	if err := ecs.Add(w, e, component.SpriteAnimationComponent.Kind(), &component.SpriteAnimation{
		AnimationName: vo.AnimationName,
		FPS:           vo.FPS,
		PlayMode:      vo.PlayMode,
		FrameRanges:   ranges,
	}); err != nil {
		return err
	}
	return addDimensions(w, e, 0, 0)
}

func addSpriter(w *ecs.World, e ecs.Entity, vo *scene.SpriterVO, _ *buildContext) error {
	if err := ecs.Add(w, e, component.SpriterAnimationComponent.Kind(), &component.SpriterAnimation{
		AnimationName: vo.AnimationName,
		Animation:     vo.Animation,
		Entity:        vo.Entity,
	}); err != nil {
		return err
	}
	return addDimensions(w, e, 0, 0)
}

func addComposite(w *ecs.World, e ecs.Entity, vo *scene.CompositeItemVO, _ *buildContext) error {
	var layers []scene.LayerItemVO
	if vo.Composite != nil {
		layers = vo.Composite.Layers
	}
	if err := AddContainer(w, e, layers); err != nil {
		return err
	}
	ct, _ := ecs.Get(w, e, component.CompositeTransformComponent.Kind())
	ct.ScissorX = float64(vo.ScissorX)
	ct.ScissorY = float64(vo.ScissorY)
	ct.ScissorW = float64(vo.ScissorW)
	ct.ScissorH = float64(vo.ScissorH)
	return addDimensions(w, e, float64(vo.Width), float64(vo.Height))
}

// AddContainer attaches the components every composite carries: a
// CompositeTransform, an empty Node and a LayerMap with at least one layer.
func AddContainer(w *ecs.World, e ecs.Entity, layers []scene.LayerItemVO) error {
	if err := ecs.Add(w, e, component.CompositeTransformComponent.Kind(), &component.CompositeTransform{}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.NodeComponent.Kind(), &component.Node{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.LayerMapComponent.Kind(), component.NewLayerMap(layers))
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, vo *scene.PhysicsBodyDataVO, ctx *buildContext) error {
	t := ecs.MustGet(w, e, component.TransformComponent.Kind())
	d := ecs.MustGet(w, e, component.DimensionsComponent.Kind())

	pb := &component.PhysicsBody{
		BodyType:    vo.BodyType,
		Width:       d.Width * t.ScaleX,
		Height:      d.Height * t.ScaleY,
		Mass:        float64(vo.Mass),
		Friction:    float64(vo.Friction),
		Restitution: float64(vo.Restitution),
		Sensor:      vo.Sensor,
	}
	if pb.Mass <= 0 {
		pb.Mass = 1
	}

	if ctx.space != nil {
		var body *cp.Body
		switch vo.BodyType {
		case scene.BodyStatic:
			body = cp.NewStaticBody()
		case scene.BodyKinematic:
			body = cp.NewKinematicBody()
		default:
			body = cp.NewBody(pb.Mass, cp.MomentForBox(pb.Mass, pb.Width, pb.Height))
		}
		body.SetPosition(cp.Vector{X: t.X + pb.Width/2, Y: t.Y + pb.Height/2})
		body.SetAngle(t.Rotation * math.Pi / 180)
		body.UserData = uint64(e)

		shape := cp.NewBox(body, pb.Width, pb.Height, 0)
		shape.SetFriction(pb.Friction)
		shape.SetElasticity(pb.Restitution)
		shape.SetSensor(pb.Sensor)
		pb.Space = ctx.space
		pb.Body = body
		pb.Shape = shape
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), pb); err != nil {
		return err
	}
	if pb.Body != nil {
		ctx.space.AddBody(pb.Body)
		ctx.space.AddShape(pb.Shape)
	}
	return nil
}

func addScript(w *ecs.World, e ecs.Entity, name string, ctx *buildContext) {
	if ctx.rm == nil {
		return
	}
	src, err := ctx.rm.Script(name)
	if err != nil {
		ctx.log.Warn("item script not loaded", zap.String("script", name), zap.Error(err))
		return
	}
	if err := ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Name: name, Source: src}); err != nil {
		ctx.log.Warn("item script not attached", zap.String("script", name), zap.Error(err))
	}
}
