// Package viz runs the visualization on top of Ebitengine.
package viz

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/baldhumanity/cellbrain/brain"
	"github.com/baldhumanity/cellbrain/scene"
)

const (
	panStep  = 10.0
	zoomStep = 1.05
)

var clearColor = color.RGBA{0x20, 0x20, 0x20, 0xff}

// Game implements ebiten.Game on top of a scene.Driver.
type Game struct {
	cfg       *brain.Config
	driver    *scene.Driver
	showDebug bool
}

// NewGame builds a game around an already-constructed network.
func NewGame(cfg *brain.Config, net *brain.Network) (*Game, error) {
	d, err := scene.NewDriver(cfg, net)
	if err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, driver: d}, nil
}

// Update is called each tick by Ebitengine.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	return g.driver.Step()
}

func (g *Game) handleInput() error {
	d := g.driver
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.Paused = !d.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		d.Cell.Reset()
		d.Camera.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := d.Rebrain(); err != nil {
			return fmt.Errorf("failed to rebuild brain: %w", err)
		}
	}

	cam := d.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Pan(0, -panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) {
		cam.ZoomBy(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract) {
		cam.ZoomBy(1 / zoomStep)
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		cam.ZoomBy(zoomStep)
	} else if dy < 0 {
		cam.ZoomBy(1 / zoomStep)
	}
	return nil
}

// Draw is called each frame by Ebitengine.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.drawGrid(screen)
	g.drawCell(screen)
	g.drawBrain(screen)
	if g.showDebug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	grid := g.driver.Grid
	for _, tile := range grid.Tiles() {
		if !g.driver.Camera.Visible(tile) {
			continue
		}
		g.drawRect(screen, tile, grid.Fill, grid.Border, grid.BorderThickness)
	}
}

func (g *Game) drawCell(screen *ebiten.Image) {
	cell := g.driver.Cell
	g.drawCircle(screen, cell.X, cell.Y, cell.Radius, cell.Fill, cell.Border, cell.BorderThickness)
}

func (g *Game) drawBrain(screen *ebiten.Image) {
	panel := g.driver.Panel
	g.drawRect(screen, panel.Backdrop(), panel.BackdropColor, panel.BackdropBorderColor, panel.BackdropBorderWidth)
	for _, m := range g.driver.Marks() {
		g.drawCircle(screen, m.X, m.Y, panel.NeuronRadius, m.Fill, panel.NeuronBorderColor, panel.NeuronBorderWidth)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	d := g.driver
	layers := d.Layers()

	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %.1f  FPS: %.1f  frame: %d\n", ebiten.ActualTPS(), ebiten.ActualFPS(), d.Cell.Frames)
	fmt.Fprintf(&b, "accumulator: %v  paused: %v\n", d.Net.Mode, d.Paused)
	for _, s := range brain.SummarizeLayers(layers) {
		fmt.Fprintln(&b, s.String())
	}

	mx, my := ebiten.CursorPosition()
	wx, wy := d.Camera.ScreenToWorld(float64(mx), float64(my))
	if l, i, ok := d.Panel.NeuronAt(wx, wy); ok && l < len(layers) {
		fmt.Fprintf(&b, "neuron %d/%d = %.5f\n", l, i, layers[l][i])
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) drawRect(screen *ebiten.Image, r scene.Rect, fill, border color.Color, borderWidth float64) {
	cam := g.driver.Camera
	x, y := cam.WorldToScreen(r.CX-r.W/2, r.CY+r.H/2)
	w, h := cam.Scale(r.W), cam.Scale(r.H)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	if borderWidth > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(cam.Scale(borderWidth)), border, false)
	}
}

func (g *Game) drawCircle(screen *ebiten.Image, cx, cy, radius float64, fill, border color.Color, borderWidth float64) {
	cam := g.driver.Camera
	x, y := cam.WorldToScreen(cx, cy)
	r := cam.Scale(radius)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), fill, true)
	if borderWidth > 0 {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), float32(cam.Scale(borderWidth)), border, true)
	}
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetTPS(g.cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
