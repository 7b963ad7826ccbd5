package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/baldhumanity/cellbrain/brain"
)

// Cell is the animated circle at the world origin whose fill drifts toward
// white one step per frame.
type Cell struct {
	X, Y            float64
	Radius          float64
	BorderThickness float64
	Fill            colorful.Color
	Border          colorful.Color
	FadeStep        float64
	Frames          int

	start colorful.Color
}

// NewCell builds a cell from its configuration section.
func NewCell(cfg brain.CellConfig) (*Cell, error) {
	c := &Cell{
		Radius:          cfg.Radius,
		BorderThickness: cfg.BorderThickness,
		FadeStep:        cfg.FadeStep,
	}
	err := parseColors(
		colorField{"cell fill_color", cfg.FillColor, &c.Fill},
		colorField{"cell border_color", cfg.BorderColor, &c.Border},
	)
	if err != nil {
		return nil, err
	}
	c.start = c.Fill
	return c, nil
}

// Step advances the fill color by one frame.
func (c *Cell) Step() {
	c.Fill = Brighten(c.Fill, c.FadeStep)
	c.Frames++
}

// Saturated reports whether the fill has reached white.
func (c *Cell) Saturated() bool {
	return c.Fill.R >= 1 && c.Fill.G >= 1 && c.Fill.B >= 1
}

// Reset restores the starting fill color.
func (c *Cell) Reset() {
	c.Fill = c.start
	c.Frames = 0
}
