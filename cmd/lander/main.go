// lander drops a small craft onto random lunar terrain. Arrow keys fire the
// thrusters: Down is the main engine, Left and Right the side thrusters.
// Any other key cuts all thrust.
package main

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/lander"
	"github.com/phanxgames/lander/render"
)

const (
	windowTitle = "Lander"

	worldSize   = 100.0 // meters, both axes
	viewRatio   = 0.15  // meters per pixel
	moonGravity = 1.625 // m/s²
	landerMass  = 10.0  // kg

	debugMode = false
)

var (
	landerColor  = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	terrainColor = color.RGBA{R: 0x70, G: 0x70, B: 0x78, A: 0xff}
	lineColor    = color.Black
)

// keyMap lists the keys with thrusters; every other key edge is KeyOther.
var keyMap = map[ebiten.Key]lander.Key{
	ebiten.KeyArrowDown:  lander.KeyMainThruster,
	ebiten.KeyArrowLeft:  lander.KeyLeft,
	ebiten.KeyArrowRight: lander.KeyRight,
}

type game struct {
	engine  *lander.Engine
	vp      *lander.Viewport
	terrain []lander.Position
	hud     *render.HUD
	player  int

	keyBuf []ebiten.Key
}

func (g *game) Update() error {
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.engine.HandleKey(lander.KeyEvent{Key: keyMap[k], Pressed: true})
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.engine.HandleKey(lander.KeyEvent{Key: keyMap[k], Pressed: false})
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.engine.Update(dt)
	g.vp.Update(float32(dt))
	g.hud.Update(dt, g.engine.Body(g.player), g.engine.Colliding(g.player))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	render.Bodies(screen, g.engine.Bodies(), g.vp, landerColor, terrainColor)
	render.Polyline(screen, g.terrain, g.vp, 1, lineColor)
	g.hud.Draw(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	return w, h
}

func main() {
	// Start above the world and ease down so the terrain scrolls into view.
	vp := lander.NewViewport(lander.Pos(0, worldSize+20), viewRatio)
	vp.ScrollTo(lander.Pos(0, worldSize), 1.5, ease.OutCubic)

	engine := lander.NewEngine(lander.EngineConfig{
		Gravity: moonGravity,
		Debug:   debugMode,
	})
	ship, err := lander.StillBody(landerMass, []lander.Position{
		{X: 49, Y: 100},
		{X: 51, Y: 100},
		{X: 51, Y: 98},
		{X: 49, Y: 98},
	}, lander.WithReportCollision())
	if err != nil {
		log.Fatal(err)
	}
	engine.AddBody(ship)

	terrain, err := lander.GenerateTerrain(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), lander.TerrainConfig{})
	if err != nil {
		log.Fatal(err)
	}
	ground, err := lander.TerrainBodies(terrain)
	if err != nil {
		log.Fatal(err)
	}
	engine.AddBodies(ground...)

	if debugMode {
		log.Printf("landing site at segment %d", lander.LandingSite(terrain))
	}

	g := &game{
		engine:  engine,
		vp:      vp,
		terrain: terrain,
		hud:     render.NewHUD(),
	}
	_, g.player = engine.Player()

	side := int(vp.TranslateSize(worldSize))
	ebiten.SetWindowSize(side, side)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
