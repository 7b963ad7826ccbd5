package scene

import (
	"fmt"

	"github.com/baldhumanity/cellbrain/brain"
	"github.com/baldhumanity/cellbrain/brain/nn"
)

// Driver advances a Scene frame by frame: the cell drifts one step and the
// brain is evaluated once with a constant input.
type Driver struct {
	*Scene
	Net    *nn.FeedForwardNetwork
	Paused bool

	cfg    brain.BrainConfig
	input  []float64
	layers [][]float64
}

// NewDriver builds a scene sized for net and an evaluator configured by cfg.
func NewDriver(cfg *brain.Config, net *brain.Network) (*Driver, error) {
	if net == nil {
		return nil, fmt.Errorf("cannot create driver without a network")
	}
	sc, err := NewWithTopology(cfg, net.Topology())
	if err != nil {
		return nil, err
	}
	ff, err := nn.FromConfig(net, cfg.Brain)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator: %w", err)
	}
	return &Driver{
		Scene: sc,
		Net:   ff,
		cfg:   cfg.Brain,
		input: nn.ConstantInput(net, cfg.Brain.InputValue),
	}, nil
}

// Input returns a copy of the per-frame input vector.
func (d *Driver) Input() []float64 {
	return append([]float64(nil), d.input...)
}

// Layers returns the activations from the latest frame, or nil before the
// first one.
func (d *Driver) Layers() [][]float64 {
	return d.layers
}

// Marks returns the brain panel marks for the latest frame.
func (d *Driver) Marks() []NeuronMark {
	return d.Panel.Marks(d.layers)
}

// Step advances one frame unless paused.
func (d *Driver) Step() error {
	if d.Paused {
		return nil
	}
	d.Cell.Step()
	layers, err := d.Net.Compute(d.input)
	if err != nil {
		return fmt.Errorf("failed to compute network: %w", err)
	}
	d.layers = layers
	return nil
}

// Rebrain swaps in a freshly randomized network of the same topology and
// clears the latest activations.
func (d *Driver) Rebrain() error {
	net, err := brain.NewNetwork(d.Net.Network.Topology(), nil)
	if err != nil {
		return err
	}
	return d.SetNetwork(net)
}

// SetNetwork replaces the evaluated network. Its topology must match the
// panel's.
func (d *Driver) SetNetwork(net *brain.Network) error {
	if net == nil {
		return fmt.Errorf("cannot set a nil network")
	}
	if net.Topology() != d.Panel.Topology {
		return fmt.Errorf("%w: panel is %dx%d, network is %dx%d", brain.ErrTopologyMismatch,
			d.Panel.Topology.LayerSize, d.Panel.Topology.LayerCount,
			net.Topology().LayerSize, net.Topology().LayerCount)
	}
	ff, err := nn.FromConfig(net, d.cfg)
	if err != nil {
		return err
	}
	d.Net = ff
	d.layers = nil
	return nil
}
