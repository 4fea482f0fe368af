// Package resources resolves the data a scene references: the scene
// descriptor itself, images, particle definitions, fonts and scripts.
package resources

import (
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sceneloader/scene"
	"golang.org/x/image/font"
)

var (
	ErrSceneNotFound  = errors.New("resources: scene not found")
	ErrScriptNotFound = errors.New("resources: script not found")
)

// Retriever is what the loader and entity factory need from a resource store.
type Retriever interface {
	SceneVO(name string) (*scene.SceneVO, error)
	TextureRegion(name string) (*Region, bool)
	ParticleEffect(name string) ([]byte, bool)
	Font(style string, size int) font.Face
	Script(name string) ([]byte, error)
}

// Region is a decoded image. The GPU image is created on first use.
type Region struct {
	Name   string
	Width  int
	Height int

	src  image.Image
	once sync.Once
	img  *ebiten.Image
}

// NewRegion wraps a decoded image.
func NewRegion(name string, src image.Image) *Region {
	r := &Region{Name: name, src: src}
	if src != nil {
		b := src.Bounds()
		r.Width, r.Height = b.Dx(), b.Dy()
	}
	return r
}

// Image returns the ebiten image for the region, or nil when the region has no
// pixel data.
func (r *Region) Image() *ebiten.Image {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		if r.src != nil {
			r.img = ebiten.NewImageFromImage(r.src)
		}
	})
	return r.img
}
