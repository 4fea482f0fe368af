// Package entity turns scene item descriptors into linked entities.
package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"github.com/milk9111/sceneloader/resources"
	"github.com/milk9111/sceneloader/scene"
	"go.uber.org/zap"
)

var (
	ErrNoParentNode    = errors.New("entity: parent has no node component")
	ErrMissingImage    = errors.New("entity: image not found")
	ErrUnsupportedItem = errors.New("entity: unsupported item type")
)

// ScriptVar is the custom variable naming an item's script.
const ScriptVar = "script"

// Factory builds one entity per item descriptor and links it under a parent.
type Factory struct {
	rm    resources.Retriever
	space *cp.Space
	log   *zap.Logger
}

func NewFactory(rm resources.Retriever, log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{rm: rm, log: log}
}

// SetSpace sets the physics space new bodies are added to. With a nil space,
// items still get a PhysicsBody component but no simulated body.
func (f *Factory) SetSpace(space *cp.Space) {
	f.space = space
}

// SetRetriever swaps the resource source used for later entities.
func (f *Factory) SetRetriever(rm resources.Retriever) {
	f.rm = rm
}

type buildContext struct {
	rm     resources.Retriever
	space  *cp.Space
	log    *zap.Logger
	parent ecs.Entity
	vars   map[string]string
}

// CreateEntity builds item as a child of parent and appends it to the
// parent's Node. On error nothing is left in the world.
func (f *Factory) CreateEntity(w *ecs.World, parent ecs.Entity, item scene.Item) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if item == nil {
		return 0, fmt.Errorf("build entity: item is nil")
	}
	node, ok := ecs.Get(w, parent, component.NodeComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("build entity: parent %s: %w", parent, ErrNoParentNode)
	}

	main := item.Main()
	ctx := &buildContext{
		rm:     f.rm,
		space:  f.space,
		log:    f.log,
		parent: parent,
		vars:   scene.ParseCustomVars(main.CustomVars),
	}

	e := w.CreateEntity()
	if err := build(w, e, item, ctx); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("build entity: %s %q: %w", item.Type(), label(main), err)
	}

	node.AddChild(uint64(e))
	return e, nil
}

func label(m *scene.MainItemVO) string {
	if m.ItemIdentifier != "" {
		return m.ItemIdentifier
	}
	return m.ItemName
}

func build(w *ecs.World, e ecs.Entity, item scene.Item, ctx *buildContext) error {
	main := item.Main()
	if err := addCommon(w, e, item.Type(), main, ctx); err != nil {
		return err
	}

	var err error
	switch vo := item.(type) {
	case *scene.SimpleImageVO:
		err = addImage(w, e, vo, ctx)
	case *scene.LabelVO:
		err = addLabel(w, e, vo, ctx)
	case *scene.ParticleEffectVO:
		err = addParticle(w, e, vo, ctx)
	case *scene.LightVO:
		err = addLight(w, e, vo, ctx)
	case *scene.SpineVO:
		err = addSpine(w, e, vo, ctx)
	case *scene.SpriteAnimationVO:
		err = addSpriteAnimation(w, e, vo, ctx)
	case *scene.SpriterVO:
		err = addSpriter(w, e, vo, ctx)
	case *scene.CompositeItemVO:
		err = addComposite(w, e, vo, ctx)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedItem, item.Type())
	}
	if err != nil {
		return err
	}

	if main.Physics != nil {
		if err := addPhysicsBody(w, e, main.Physics, ctx); err != nil {
			return fmt.Errorf("add physics: %w", err)
		}
	}
	if name := ctx.vars[ScriptVar]; name != "" {
		addScript(w, e, name, ctx)
	}
	return nil
}
