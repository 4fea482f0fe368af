package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sceneloader/ecs"
	"github.com/milk9111/sceneloader/ecs/system"
	"github.com/milk9111/sceneloader/loader"
	"go.uber.org/zap"
)

type Game struct {
	frames int

	loader   *loader.SceneLoader
	lighting *system.Lighting
	hot      *loader.HotReload
	render   *system.RenderSystem
	log      *zap.Logger

	width     int
	height    int
	showTree  bool
	outline   string
	lastError error
}

func NewGame(sl *loader.SceneLoader, lighting *system.Lighting, hot *loader.HotReload, cfg loader.Config, log *zap.Logger) *Game {
	return &Game{
		loader:   sl,
		lighting: lighting,
		hot:      hot,
		render:   system.NewRenderSystem(),
		log:      log,
		width:    cfg.DisplayWidth,
		height:   cfg.DisplayHeight,
		showTree: cfg.Debug,
	}
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showTree = !g.showTree
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if _, err := g.loader.LoadScene(g.loader.Name()); err != nil {
			g.lastError = err
		}
	}

	if _, err := g.hot.Poll(); err != nil {
		g.log.Warn("scene reload failed", zap.Error(err))
		g.lastError = err
	}

	world := g.loader.World()
	for _, evt := range world.Events().Drain() {
		if evt.Type != ecs.EventSceneLoaded {
			continue
		}
		if loaded, ok := evt.Data.(ecs.SceneLoaded); ok {
			ebiten.SetWindowTitle("sceneview - " + loaded.Name)
			g.lastError = nil
		}
	}

	world.Update()

	if g.showTree {
		var buf bytes.Buffer
		if root := g.loader.Root(); world.IsAlive(root) {
			_ = printTree(&buf, world, root)
		}
		g.outline = buf.String()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	bg := color.NRGBA{A: 255}
	if ambient, ok := g.lighting.Ambient(); ok {
		bg = ambient
	}
	screen.Fill(bg)

	g.render.Draw(g.loader.World(), screen)

	status := fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d", g.frames, ebiten.ActualFPS(), g.loader.World().Len())
	if g.lastError != nil {
		status += "\n" + g.lastError.Error()
	}
	if g.showTree {
		status += "\n\n" + g.outline
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
