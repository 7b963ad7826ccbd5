// Package scene holds the renderer-independent state of the visualization:
// the background grid, the animated cell, the brain panel layout and the
// camera that maps them onto the screen.
package scene

import (
	"fmt"

	"github.com/baldhumanity/cellbrain/brain"
)

// Scene groups everything drawn in a frame.
type Scene struct {
	Camera *Camera
	Grid   *Grid
	Cell   *Cell
	Panel  *BrainPanel
}

// New builds a scene for the reference topology from cfg.
func New(cfg *brain.Config) (*Scene, error) {
	return NewWithTopology(cfg, brain.DefaultTopology())
}

// NewWithTopology builds a scene whose brain panel fits topology.
func NewWithTopology(cfg *brain.Config, topology brain.Topology) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Grid)
	if err != nil {
		return nil, fmt.Errorf("failed to build grid: %w", err)
	}
	cell, err := NewCell(cfg.Cell)
	if err != nil {
		return nil, fmt.Errorf("failed to build cell: %w", err)
	}
	panel, err := NewBrainPanel(topology, cfg.Visual)
	if err != nil {
		return nil, fmt.Errorf("failed to build brain panel: %w", err)
	}
	return &Scene{
		Camera: NewCamera(cfg.Window.Width, cfg.Window.Height),
		Grid:   grid,
		Cell:   cell,
		Panel:  panel,
	}, nil
}
