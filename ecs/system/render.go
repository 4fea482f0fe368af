package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/component"
	"golang.org/x/image/font"
)

const degToRad = math.Pi / 180

// RenderSystem paints the scene tree under the viewport entity. Children are
// drawn in Node order, so a LayerSystem pass must have run first.
type RenderSystem struct {
	root  ecs.Entity
	faces map[font.Face]*ebtext.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{faces: make(map[font.Face]*ebtext.GoXFace)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.root.Valid() || !w.IsAlive(r.root) {
		root, ok := w.First(component.ViewportComponent.Kind())
		if !ok {
			return
		}
		r.root = root
	}

	camX, camY, zoom := 0.0, 0.0, 1.0
	if vp, ok := ecs.Get(w, r.root, component.ViewportComponent.Kind()); ok {
		camX, camY = vp.CameraX, vp.CameraY
		if vp.Zoom > 0 {
			zoom = vp.Zoom
		}
	}

	var base ebiten.GeoM
	base.Translate(-camX, -camY)
	base.Scale(zoom, zoom)
	r.drawNode(w, screen, r.root, base)
}

func (r *RenderSystem) drawNode(w *ecs.World, screen *ebiten.Image, e ecs.Entity, parent ebiten.GeoM) {
	geo := localGeoM(w, e)
	geo.Concat(parent)

	var cs ebiten.ColorScale
	if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok {
		c := tint.Color
		cs.Scale(c.R*c.A, c.G*c.A, c.B*c.A, c.A)
	}

	if region, ok := ecs.Get(w, e, component.TextureRegionComponent.Kind()); ok && region.Image != nil {
		op := &ebiten.DrawImageOptions{GeoM: geo, ColorScale: cs}
		screen.DrawImage(region.Image, op)
	}

	if label, ok := ecs.Get(w, e, component.LabelComponent.Kind()); ok && label.Face != nil && label.Text != "" {
		op := &ebtext.DrawOptions{}
		op.GeoM = geo
		op.ColorScale = cs
		ebtext.Draw(screen, label.Text, r.face(label.Face), op)
	}

	node, ok := ecs.Get(w, e, component.NodeComponent.Kind())
	if !ok {
		return
	}
	for _, child := range node.Children {
		r.drawNode(w, screen, ecs.Entity(child), geo)
	}
}

// localGeoM maps an entity's local space into its parent's: scale and rotate
// around the origin, then translate to the entity's position.
func localGeoM(w *ecs.World, e ecs.Entity) ebiten.GeoM {
	var geo ebiten.GeoM
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return geo
	}

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}

	geo.Translate(-t.OriginX, -t.OriginY)
	geo.Scale(sx, sy)
	geo.Rotate(t.Rotation * degToRad)
	geo.Translate(t.OriginX+t.X, t.OriginY+t.Y)
	return geo
}

func (r *RenderSystem) face(f font.Face) *ebtext.GoXFace {
	if r.faces == nil {
		r.faces = make(map[font.Face]*ebtext.GoXFace)
	}
	gf, ok := r.faces[f]
	if !ok {
		gf = ebtext.NewGoXFace(f)
		r.faces[f] = gf
	}
	return gf
}
