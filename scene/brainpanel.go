package scene

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/baldhumanity/cellbrain/brain"
)

// NeuronMark is one neuron circle ready to draw.
type NeuronMark struct {
	Layer, Index int
	X, Y         float64 // World center
	Value        float64
	Fill         colorful.Color
}

// BrainPanel lays out the network's neurons on a backdrop: one column per
// layer, one row per neuron, with neuron 0 at the bottom.
type BrainPanel struct {
	Topology            brain.Topology
	X, Y                float64 // World center of the backdrop
	NeuronRadius        float64
	NeuronSpacing       float64
	NeuronBorderWidth   float64
	BackdropMargin      float64
	BackdropBorderWidth float64

	NeuronColor         colorful.Color // Fill before the first evaluation
	NeuronBorderColor   colorful.Color
	BackdropColor       colorful.Color
	BackdropBorderColor colorful.Color
}

// NewBrainPanel builds a panel for the given topology.
func NewBrainPanel(topology brain.Topology, cfg brain.VisualConfig) (*BrainPanel, error) {
	p := &BrainPanel{
		Topology:            topology,
		X:                   cfg.X,
		Y:                   cfg.Y,
		NeuronRadius:        cfg.NeuronRadius,
		NeuronSpacing:       cfg.NeuronSpacing,
		NeuronBorderWidth:   cfg.NeuronBorderWidth,
		BackdropMargin:      cfg.BackdropMargin,
		BackdropBorderWidth: cfg.BackdropBorderWidth,
	}
	err := parseColors(
		colorField{"neuron_color", cfg.NeuronColor, &p.NeuronColor},
		colorField{"neuron_border_color", cfg.NeuronBorderColor, &p.NeuronBorderColor},
		colorField{"backdrop_color", cfg.BackdropColor, &p.BackdropColor},
		colorField{"backdrop_border_color", cfg.BackdropBorderColor, &p.BackdropBorderColor},
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Backdrop returns the rectangle behind the neurons.
func (p *BrainPanel) Backdrop() Rect {
	return Rect{
		CX: p.X,
		CY: p.Y,
		W:  p.BackdropMargin + float64(p.Topology.LayerCount)*p.NeuronSpacing,
		H:  p.BackdropMargin + float64(p.Topology.LayerSize)*p.NeuronSpacing,
	}
}

// NeuronCenter returns the world position of a neuron.
func (p *BrainPanel) NeuronCenter(layer, index int) (float64, float64) {
	width := float64(p.Topology.LayerCount) * p.NeuronSpacing
	height := float64(p.Topology.LayerSize) * p.NeuronSpacing
	startX := (p.BackdropMargin + p.NeuronRadius - width) / 2
	startY := (p.BackdropMargin + p.NeuronRadius - height) / 2
	return p.X + startX + float64(layer)*p.NeuronSpacing,
		p.Y + startY + float64(index)*p.NeuronSpacing
}

// Marks returns one mark per neuron, layer-major. A nil layers slice (no
// evaluation yet) yields marks in the idle neuron color; values beyond the
// supplied layers are treated the same way.
func (p *BrainPanel) Marks(layers [][]float64) []NeuronMark {
	marks := make([]NeuronMark, 0, p.Topology.LayerCount*p.Topology.LayerSize)
	for l := 0; l < p.Topology.LayerCount; l++ {
		for i := 0; i < p.Topology.LayerSize; i++ {
			x, y := p.NeuronCenter(l, i)
			m := NeuronMark{Layer: l, Index: i, X: x, Y: y, Fill: p.NeuronColor, Value: math.NaN()}
			if l < len(layers) && i < len(layers[l]) {
				m.Value = layers[l][i]
				m.Fill = Grayscale(m.Value)
			}
			marks = append(marks, m)
		}
	}
	return marks
}

// NeuronAt returns the neuron under a world point, if any.
func (p *BrainPanel) NeuronAt(x, y float64) (layer, index int, ok bool) {
	for l := 0; l < p.Topology.LayerCount; l++ {
		for i := 0; i < p.Topology.LayerSize; i++ {
			cx, cy := p.NeuronCenter(l, i)
			if math.Hypot(x-cx, y-cy) <= p.NeuronRadius {
				return l, i, true
			}
		}
	}
	return 0, 0, false
}
