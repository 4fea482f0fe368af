package resources

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"scenes/MainScene.dt":      {Data: []byte(`{"composite":{"sImages":[{"imageName":"hero"}]}}`)},
		"scenes/menu.yaml":         {Data: []byte("sceneName: menu\ncomposite:\n  layers:\n    - layerName: ui\n")},
		"scenes/broken.dt":         {Data: []byte(`{"composite":`)},
		"scenes/nested.dt":         {Data: []byte(`{"composite":{"sImages":[{"imageName":"hero"},{"imageName":"gone"}],"sComposites":[{"composite":{"sImages":[{"imageName":"hero"}]}}]}}`)},
		"orig/images/hero.png":     {Data: pngBytes(t, 16, 8)},
		"hd/images/hero.png":       {Data: pngBytes(t, 32, 16)},
		"orig/images/corrupt.png":  {Data: []byte("not a png")},
		"particles/fire":           {Data: []byte("fire-def")},
		"scripts/spin.tengo":       {Data: []byte("x := 1")},
		"freetypefonts/broken.ttf": {Data: []byte("nope")},
	}
}

func TestManagerSceneVO(t *testing.T) {
	m := NewManager(testFS(t))

	vo, err := m.SceneVO("MainScene")
	require.NoError(t, err)
	assert.Equal(t, "MainScene", vo.SceneName, "name backfilled from file")
	require.Len(t, vo.Composite.Images, 1)

	vo2, err := m.SceneVO("MainScene")
	require.NoError(t, err)
	assert.NotSame(t, vo, vo2)

	menu, err := m.SceneVO("menu")
	require.NoError(t, err)
	assert.Equal(t, []string{"ui"}, menu.Composite.LayerNames())

	_, err = m.SceneVO("nope")
	require.ErrorIs(t, err, ErrSceneNotFound)

	_, err = m.SceneVO("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSceneNotFound)
}

func TestManagerTextureRegion(t *testing.T) {
	m := NewManager(testFS(t))

	r, ok := m.TextureRegion("hero")
	require.True(t, ok)
	assert.Equal(t, 16, r.Width)
	assert.Equal(t, 8, r.Height)

	again, ok := m.TextureRegion("hero")
	require.True(t, ok)
	assert.Same(t, r, again)

	_, ok = m.TextureRegion("missing")
	assert.False(t, ok)
	_, ok = m.TextureRegion("corrupt")
	assert.False(t, ok)
	_, ok = m.TextureRegion("")
	assert.False(t, ok)

	hd := NewManager(testFS(t), WithResolution("hd"))
	assert.Equal(t, "hd", hd.Resolution())
	r, ok = hd.TextureRegion("hero")
	require.True(t, ok)
	assert.Equal(t, 32, r.Width)
}

func TestManagerPreload(t *testing.T) {
	m := NewManager(testFS(t))
	require.NoError(t, m.Preload(context.Background(), []string{"hero", "missing"}))

	m.mu.RLock()
	_, cached := m.images["hero"]
	m.mu.RUnlock()
	assert.True(t, cached)

	require.Error(t, m.Preload(context.Background(), []string{"corrupt"}))
}

func TestManagerPreloadScene(t *testing.T) {
	m := NewManager(testFS(t))
	require.NoError(t, m.PreloadScene(context.Background(), "nested"))

	m.mu.RLock()
	_, cached := m.images["hero"]
	m.mu.RUnlock()
	assert.True(t, cached, "images of nested composites are decoded")

	require.ErrorIs(t, m.PreloadScene(context.Background(), "nope"), ErrSceneNotFound)
}

func TestManagerSceneNameWithExtension(t *testing.T) {
	m := NewManager(testFS(t))

	p, err := m.ScenePath("menu.yaml")
	require.NoError(t, err)
	assert.Equal(t, "scenes/menu.yaml", p)

	vo, err := m.SceneVO("MainScene.dt")
	require.NoError(t, err)
	assert.Equal(t, "MainScene", vo.SceneName)

	assert.Equal(t, "MainScene", TrimSceneExt("MainScene.dt"))
	assert.Equal(t, "level.v2", TrimSceneExt("level.v2"))
}

func TestManagerMiscResources(t *testing.T) {
	m := NewManager(testFS(t))

	def, ok := m.ParticleEffect("fire")
	require.True(t, ok)
	assert.Equal(t, "fire-def", string(def))
	_, ok = m.ParticleEffect("smoke")
	assert.False(t, ok)

	src, err := m.Script("spin.tengo")
	require.NoError(t, err)
	assert.Equal(t, "x := 1", string(src))
	_, err = m.Script("missing.tengo")
	require.ErrorIs(t, err, ErrScriptNotFound)

	assert.Equal(t, basicfont.Face7x13, m.Font("", 12))
	assert.Equal(t, basicfont.Face7x13, m.Font("arial", 12))
	assert.Equal(t, basicfont.Face7x13, m.Font("broken", 12))
}

func TestRegionWithoutPixels(t *testing.T) {
	r := NewRegion("blank", nil)
	assert.Nil(t, r.Image())
	assert.Zero(t, r.Width)

	var nilRegion *Region
	assert.Nil(t, nilRegion.Image())
}
