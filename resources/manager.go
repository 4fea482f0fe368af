package resources

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/milk9111/sceneloader/scene"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultResolution = "orig"

	scenesDir    = "scenes"
	particlesDir = "particles"
	scriptsDir   = "scripts"
	fontsDir     = "freetypefonts"
)

var sceneExts = []string{".dt", ".json", ".yaml", ".yml"}

var _ Retriever = (*Manager)(nil)

// Manager reads a project laid out as
//
//	scenes/<name>.dt|.json|.yaml
//	<resolution>/images/<name>.png
//	particles/<name>
//	freetypefonts/<style>.ttf
//	scripts/<name>
//
// Images and fonts are decoded once and cached.
type Manager struct {
	fsys       fs.FS
	resolution string
	log        *zap.Logger

	mu     sync.RWMutex
	images map[string]*Region
	faces  map[string]font.Face
	group  singleflight.Group
}

type Option func(*Manager)

// WithResolution selects the image directory. Defaults to "orig".
func WithResolution(res string) Option {
	return func(m *Manager) {
		if res != "" {
			m.resolution = res
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

func NewManager(fsys fs.FS, opts ...Option) *Manager {
	m := &Manager{
		fsys:       fsys,
		resolution: DefaultResolution,
		log:        zap.NewNop(),
		images:     make(map[string]*Region),
		faces:      make(map[string]font.Face),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Resolution returns the active image resolution.
func (m *Manager) Resolution() string {
	return m.resolution
}

// TrimSceneExt strips a known scene extension from name.
func TrimSceneExt(name string) string {
	if IsSceneFile(name) {
		return strings.TrimSuffix(name, path.Ext(name))
	}
	return name
}

// ScenePath returns the file a scene name resolves to. The name may carry a
// scene extension.
func (m *Manager) ScenePath(name string) (string, error) {
	name = TrimSceneExt(name)
	for _, ext := range sceneExts {
		p := path.Join(scenesDir, name+ext)
		if _, err := fs.Stat(m.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSceneNotFound, name)
}

// SceneVO decodes a fresh copy of the named scene on every call.
func (m *Manager) SceneVO(name string) (*scene.SceneVO, error) {
	p, err := m.ScenePath(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("resources: read %s: %w", p, err)
	}
	vo, err := scene.Decode(data, scene.FormatFor(p))
	if err != nil {
		return nil, fmt.Errorf("resources: scene %q: %w", name, err)
	}
	if vo.SceneName == "" {
		vo.SceneName = TrimSceneExt(name)
	}
	return vo, nil
}

// TextureRegion returns the named image, decoding it on first use.
func (m *Manager) TextureRegion(name string) (*Region, bool) {
	if name == "" {
		return nil, false
	}
	m.mu.RLock()
	r, ok := m.images[name]
	m.mu.RUnlock()
	if ok {
		return r, true
	}

	v, err, _ := m.group.Do("image:"+name, func() (any, error) {
		return m.decodeImage(name)
	})
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.log.Warn("decode image failed", zap.String("image", name), zap.Error(err))
		}
		return nil, false
	}
	return v.(*Region), true
}

func (m *Manager) decodeImage(name string) (*Region, error) {
	p := path.Join(m.resolution, "images", name+".png")
	data, err := fs.ReadFile(m.fsys, p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	r := NewRegion(name, img)

	m.mu.Lock()
	m.images[name] = r
	m.mu.Unlock()
	return r, nil
}

// Preload decodes the named images concurrently. Missing images are not an
// error; decode failures are.
func (m *Manager) Preload(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err, _ := m.group.Do("image:"+name, func() (any, error) {
				return m.decodeImage(name)
			})
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		})
	}
	return g.Wait()
}

// PreloadScene decodes every image the named scene references.
func (m *Manager) PreloadScene(ctx context.Context, name string) error {
	vo, err := m.SceneVO(name)
	if err != nil {
		return err
	}
	return m.Preload(ctx, imageNames(vo.Composite, nil))
}

func imageNames(vo *scene.CompositeVO, out []string) []string {
	if vo == nil {
		return out
	}
	for _, img := range vo.Images {
		if img.ImageName != "" && !slices.Contains(out, img.ImageName) {
			out = append(out, img.ImageName)
		}
	}
	for _, c := range vo.Composites {
		out = imageNames(c.Composite, out)
	}
	return out
}

func (m *Manager) ParticleEffect(name string) ([]byte, bool) {
	if name == "" {
		return nil, false
	}
	data, err := fs.ReadFile(m.fsys, path.Join(particlesDir, name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Font returns a face for style at size, falling back to a fixed bitmap face
// when the style has no font file.
func (m *Manager) Font(style string, size int) font.Face {
	if style == "" || size <= 0 {
		return basicfont.Face7x13
	}
	key := style + "@" + strconv.Itoa(size)

	m.mu.RLock()
	face, ok := m.faces[key]
	m.mu.RUnlock()
	if ok {
		return face
	}

	face = m.loadFace(style, size)
	m.mu.Lock()
	m.faces[key] = face
	m.mu.Unlock()
	return face
}

func (m *Manager) loadFace(style string, size int) font.Face {
	data, err := fs.ReadFile(m.fsys, path.Join(fontsDir, style+".ttf"))
	if err != nil {
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		m.log.Warn("parse font failed", zap.String("style", style), zap.Error(err))
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		m.log.Warn("create font face failed", zap.String("style", style), zap.Error(err))
		return basicfont.Face7x13
	}
	return face
}

func (m *Manager) Script(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, path.Join(scriptsDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrScriptNotFound, name, err)
	}
	return data, nil
}
