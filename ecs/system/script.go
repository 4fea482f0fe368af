package system

import (
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"go.uber.org/zap"
)

// Variables shared between an item script and its entity's Transform.
var scriptTransformVars = []string{"x", "y", "rotation", "scale_x", "scale_y"}

// ScriptSystem runs each item's tengo script once per tick. Scripts read and
// assign x, y, rotation, scale_x and scale_y; tick and name are read-only
// inputs. A script that fails to compile or run is disabled.
type ScriptSystem struct {
	tick int
	log  *zap.Logger
}

func NewScriptSystem(log *zap.Logger) *ScriptSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScriptSystem{log: log}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.tick++
	ecs.ForEach2(w, component.ScriptComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sc *component.Script, t *component.Transform) {
		if sc.Failed {
			return
		}
		if sc.Compiled == nil {
			compiled, err := compileScript(sc.Source, itemName(w, e))
			if err != nil {
				s.disable(e, sc, "compile", err)
				return
			}
			sc.Compiled = compiled
		}
		if err := s.run(sc.Compiled, t); err != nil {
			s.disable(e, sc, "run", err)
		}
	})
}

func (s *ScriptSystem) disable(e ecs.Entity, sc *component.Script, phase string, err error) {
	sc.Failed = true
	s.log.Warn("item script disabled",
		zap.Stringer("entity", e),
		zap.String("script", sc.Name),
		zap.String("phase", phase),
		zap.Error(err))
}

func itemName(w *ecs.World, e ecs.Entity) string {
	if m, ok := ecs.Get(w, e, component.MainItemComponent.Kind()); ok {
		return m.Identifier
	}
	return ""
}

func compileScript(src []byte, name string) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, v := range scriptTransformVars {
		if err := script.Add(v, 0.0); err != nil {
			return nil, err
		}
	}
	if err := script.Add("tick", 0); err != nil {
		return nil, err
	}
	if err := script.Add("name", name); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (s *ScriptSystem) run(c *tengo.Compiled, t *component.Transform) error {
	in := []float64{t.X, t.Y, t.Rotation, t.ScaleX, t.ScaleY}
	for i, v := range scriptTransformVars {
		if err := c.Set(v, in[i]); err != nil {
			return err
		}
	}
	if err := c.Set("tick", s.tick); err != nil {
		return err
	}
	if err := c.Run(); err != nil {
		return err
	}
	t.X = c.Get("x").Float()
	t.Y = c.Get("y").Float()
	t.Rotation = c.Get("rotation").Float()
	t.ScaleX = c.Get("scale_x").Float()
	t.ScaleY = c.Get("scale_y").Float()
	return nil
}
