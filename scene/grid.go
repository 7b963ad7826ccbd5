package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/baldhumanity/cellbrain/brain"
)

// Rect is an axis-aligned rectangle in world coordinates, given by its center.
type Rect struct {
	CX, CY float64
	W, H   float64
}

// Contains reports whether the world point lies inside r (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.CX-r.W/2 && x <= r.CX+r.W/2 && y >= r.CY-r.H/2 && y <= r.CY+r.H/2
}

// Grid is the static tiled background.
type Grid struct {
	Width           int // Tiles across
	Height          int // Tiles down
	CellSize        float64
	BorderThickness float64
	Fill            colorful.Color
	Border          colorful.Color
}

// NewGrid builds a grid from its configuration section.
func NewGrid(cfg brain.GridConfig) (*Grid, error) {
	g := &Grid{
		Width:           cfg.Width,
		Height:          cfg.Height,
		CellSize:        cfg.CellSize,
		BorderThickness: cfg.BorderThickness,
	}
	err := parseColors(
		colorField{"grid fill_color", cfg.FillColor, &g.Fill},
		colorField{"grid border_color", cfg.BorderColor, &g.Border},
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Tiles returns every tile of the grid. Tile (x, y) for x in
// [-Width/2, Width/2) and y in [-Height/2, Height/2) is centered at
// (x*CellSize, y*CellSize).
func (g *Grid) Tiles() []Rect {
	tiles := make([]Rect, 0, g.Width*g.Height)
	for x := -g.Width / 2; x < g.Width/2; x++ {
		for y := -g.Height / 2; y < g.Height/2; y++ {
			tiles = append(tiles, Rect{
				CX: float64(x) * g.CellSize,
				CY: float64(y) * g.CellSize,
				W:  g.CellSize,
				H:  g.CellSize,
			})
		}
	}
	return tiles
}
