// Package loader builds a live entity tree from a scene descriptor and keeps
// the tree's parent links consistent as entities are destroyed.
package loader

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"github.com/milk9111/sceneloader/ecs/entity"
	"github.com/milk9111/sceneloader/ecs/system"
	"github.com/milk9111/sceneloader/resources"
	"github.com/milk9111/sceneloader/scene"
	"go.uber.org/zap"
)

var ErrNoRetriever = errors.New("loader: no resource retriever")

// AmbientLight receives the scene's ambient colour once a load completes.
type AmbientLight interface {
	SetAmbientLight(c color.NRGBA)
}

// DisplaySize reports the size of the surface the root viewport fills.
type DisplaySize func() (width, height int)

// SceneLoader owns the scene tree inside a world. Every LoadScene replaces the
// previous tree, root included.
type SceneLoader struct {
	world   *ecs.World
	rm      resources.Retriever
	factory *entity.Factory
	physics *system.PhysicsSystem
	ambient AmbientLight
	display DisplaySize
	log     *zap.Logger

	name   string
	root   ecs.Entity
	vo     *scene.SceneVO
	loadID uuid.UUID
}

type Option func(*SceneLoader)

func WithLogger(log *zap.Logger) Option {
	return func(l *SceneLoader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithPhysics hands each loaded scene's physics properties to ps. The
// loader registers ps as an entity listener so destroyed entities leave the
// space.
func WithPhysics(ps *system.PhysicsSystem) Option {
	return func(l *SceneLoader) {
		l.physics = ps
	}
}

// WithAmbientLight sets the collaborator that receives the scene ambient
// colour. It starts out opaque white.
func WithAmbientLight(a AmbientLight) Option {
	return func(l *SceneLoader) {
		l.ambient = a
	}
}

func WithDisplaySize(fn DisplaySize) Option {
	return func(l *SceneLoader) {
		if fn != nil {
			l.display = fn
		}
	}
}

// New registers the loader's listeners on w. w must not be shared with
// another SceneLoader.
func New(w *ecs.World, rm resources.Retriever, opts ...Option) *SceneLoader {
	l := &SceneLoader{
		world: w,
		rm:    rm,
		log:   zap.NewNop(),
		display: func() (int, int) {
			cfg := DefaultConfig()
			return cfg.DisplayWidth, cfg.DisplayHeight
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	l.factory = entity.NewFactory(rm, l.log)

	w.AddEntityListener(detachListener{})
	if l.physics != nil {
		w.AddEntityListener(l.physics)
	}
	if l.ambient != nil {
		l.ambient.SetAmbientLight(scene.White.NRGBA())
	}
	return l
}

// SetRetriever swaps the resource source for later loads.
func (l *SceneLoader) SetRetriever(rm resources.Retriever) {
	l.rm = rm
	l.factory.SetRetriever(rm)
}

func (l *SceneLoader) World() *ecs.World {
	return l.world
}

// Root returns the root entity of the current scene. It is the zero Entity
// before the first successful load and after a failed one.
func (l *SceneLoader) Root() ecs.Entity {
	return l.root
}

// Name returns the name passed to the latest LoadScene, successful or not.
func (l *SceneLoader) Name() string {
	return l.name
}

// SceneVO returns the repaired descriptor of the current scene.
func (l *SceneLoader) SceneVO() *scene.SceneVO {
	return l.vo
}

// LoadID identifies the current load in log output.
func (l *SceneLoader) LoadID() uuid.UUID {
	return l.loadID
}

// LoadScene clears the world and builds the named scene into it. Images the
// retriever cannot resolve are dropped, with their items, before any entity is
// created; the returned descriptor is that repaired copy. If any item fails to
// build the world is left empty and the error is returned.
func (l *SceneLoader) LoadScene(name string) (*scene.SceneVO, error) {
	loadID := uuid.New()
	log := l.log.With(zap.String("scene", name), zap.Stringer("load_id", loadID))

	l.world.Clear()
	l.name, l.root, l.vo, l.loadID = name, 0, nil, uuid.Nil

	if l.rm == nil {
		return nil, ErrNoRetriever
	}
	src, err := l.rm.SceneVO(name)
	if err != nil {
		return nil, fmt.Errorf("loader: load scene %q: %w", name, err)
	}

	vo := src.Clone()
	if vo.Composite == nil {
		vo.Composite = &scene.CompositeVO{}
	}
	for _, img := range removeMissingImages(vo.Composite, l.rm) {
		log.Warn("image not found, item dropped",
			zap.String("image", img.ImageName),
			zap.String("item", img.ItemIdentifier))
	}

	space := l.physics.Reset(vo.PhysicsProperties)
	l.factory.SetSpace(space)

	root, err := l.build(vo)
	if err != nil {
		l.world.Clear()
		l.physics.Reset(nil)
		l.factory.SetSpace(nil)
		log.Error("scene load failed", zap.Error(err))
		return nil, fmt.Errorf("loader: load scene %q: %w", name, err)
	}

	if l.ambient != nil && vo.AmbientColor != nil {
		l.ambient.SetAmbientLight(vo.AmbientColor.NRGBA())
	}

	l.root, l.vo, l.loadID = root, vo, loadID
	l.world.Events().Push(ecs.Event{
		Type: ecs.EventSceneLoaded,
		Data: ecs.SceneLoaded{Name: vo.SceneName, Root: root},
	})
	log.Info("scene loaded",
		zap.Int("entities", l.world.Len()),
		zap.Bool("physics", space != nil))
	return vo, nil
}

func (l *SceneLoader) build(vo *scene.SceneVO) (ecs.Entity, error) {
	root, err := l.createRoot(vo)
	if err != nil {
		return 0, fmt.Errorf("create root: %w", err)
	}
	if err := l.buildComposite(root, vo.Composite); err != nil {
		return 0, err
	}
	return root, nil
}

// createRoot registers the root before any child so children always find
// their parent's Node.
func (l *SceneLoader) createRoot(vo *scene.SceneVO) (ecs.Entity, error) {
	w := l.world
	root := w.CreateEntity()

	if err := ecs.Add(w, root, component.MainItemComponent.Kind(), &component.MainItem{
		Type: scene.TypeComposite,
		Name: vo.SceneName,
	}); err != nil {
		return 0, err
	}
	if err := entity.AddContainer(w, root, vo.Composite.Layers); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, root, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, root, component.DimensionsComponent.Kind(), &component.Dimensions{
		Width:  component.DefaultWidth,
		Height: component.DefaultHeight,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, root, component.TintComponent.Kind(), &component.Tint{Color: scene.White}); err != nil {
		return 0, err
	}

	width, height := l.display()
	if err := ecs.Add(w, root, component.ViewportComponent.Kind(), &component.Viewport{
		Width:  width,
		Height: height,
		Zoom:   1,
	}); err != nil {
		return 0, err
	}
	return root, nil
}

// buildComposite creates parent's children list by list in a fixed order:
// images, labels, particle effects, lights, spine, sprite and spriter
// animations, then nested composites, each of which is filled in right after
// it is linked. 9-patch images are decoded but not built.
func (l *SceneLoader) buildComposite(parent ecs.Entity, vo *scene.CompositeVO) error {
	if vo == nil {
		return nil
	}
	for i := range vo.Images {
		if err := l.create(parent, &vo.Images[i]); err != nil {
			return err
		}
	}
	for i := range vo.Labels {
		if err := l.create(parent, &vo.Labels[i]); err != nil {
			return err
		}
	}
	for i := range vo.ParticleEffects {
		if err := l.create(parent, &vo.ParticleEffects[i]); err != nil {
			return err
		}
	}
	for i := range vo.Lights {
		if err := l.create(parent, &vo.Lights[i]); err != nil {
			return err
		}
	}
	for i := range vo.SpineAnimations {
		if err := l.create(parent, &vo.SpineAnimations[i]); err != nil {
			return err
		}
	}
	for i := range vo.SpriteAnimations {
		if err := l.create(parent, &vo.SpriteAnimations[i]); err != nil {
			return err
		}
	}
	for i := range vo.SpriterAnimations {
		if err := l.create(parent, &vo.SpriterAnimations[i]); err != nil {
			return err
		}
	}
	for i := range vo.Composites {
		child, err := l.factory.CreateEntity(l.world, parent, &vo.Composites[i])
		if err != nil {
			return err
		}
		if err := l.buildComposite(child, vo.Composites[i].Composite); err != nil {
			return err
		}
	}
	return nil
}

func (l *SceneLoader) create(parent ecs.Entity, item scene.Item) error {
	_, err := l.factory.CreateEntity(l.world, parent, item)
	return err
}

// removeMissingImages drops image items whose region rm cannot resolve, in vo
// and every nested composite. It returns the dropped items.
func removeMissingImages(vo *scene.CompositeVO, rm resources.Retriever) []scene.SimpleImageVO {
	if vo == nil {
		return nil
	}
	var dropped []scene.SimpleImageVO
	kept := vo.Images[:0]
	for _, img := range vo.Images {
		if _, ok := rm.TextureRegion(img.ImageName); ok {
			kept = append(kept, img)
		} else {
			dropped = append(dropped, img)
		}
	}
	vo.Images = kept
	for i := range vo.Composites {
		dropped = append(dropped, removeMissingImages(vo.Composites[i].Composite, rm)...)
	}
	return dropped
}

// FindByIdentifier returns the first entity under the root, depth first in
// child order, whose item identifier is id.
func (l *SceneLoader) FindByIdentifier(id string) (ecs.Entity, bool) {
	if !l.world.IsAlive(l.root) {
		return 0, false
	}
	return findByIdentifier(l.world, l.root, id)
}

func findByIdentifier(w *ecs.World, e ecs.Entity, id string) (ecs.Entity, bool) {
	node, ok := ecs.Get(w, e, component.NodeComponent.Kind())
	if !ok {
		return 0, false
	}
	for _, c := range node.Children {
		child := ecs.Entity(c)
		if m, ok := ecs.Get(w, child, component.MainItemComponent.Kind()); ok && m.Identifier == id {
			return child, true
		}
		if found, ok := findByIdentifier(w, child, id); ok {
			return found, true
		}
	}
	return 0, false
}
