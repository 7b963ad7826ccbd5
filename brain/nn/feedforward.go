package nn

import (
	"fmt"

	"github.com/baldhumanity/cellbrain/brain"
)

// AccumulatorMode selects how per-neuron sums are handled between layers.
type AccumulatorMode int

const (
	// CarryAccumulator keeps each neuron's running sum from one layer to the
	// next, so later layers are bounded over the residue of earlier ones.
	CarryAccumulator AccumulatorMode = iota
	// ResetAccumulator starts every layer from zero.
	ResetAccumulator
)

// String returns the configuration name of the mode.
func (m AccumulatorMode) String() string {
	switch m {
	case CarryAccumulator:
		return "carry"
	case ResetAccumulator:
		return "reset"
	default:
		return fmt.Sprintf("AccumulatorMode(%d)", int(m))
	}
}

// ParseAccumulatorMode maps a configuration name to its mode.
func ParseAccumulatorMode(name string) (AccumulatorMode, error) {
	switch name {
	case "carry", "":
		return CarryAccumulator, nil
	case "reset":
		return ResetAccumulator, nil
	}
	return 0, fmt.Errorf("unknown accumulator mode: %s", name)
}

// FeedForwardNetwork evaluates a brain.Network layer by layer.
// It holds no per-call state and may be shared between goroutines.
type FeedForwardNetwork struct {
	Network      *brain.Network
	ActivationFn brain.ActivationType
	Mode         AccumulatorMode
}

// Option configures a FeedForwardNetwork.
type Option func(*FeedForwardNetwork)

// WithActivation replaces the bounding function.
func WithActivation(fn brain.ActivationType) Option {
	return func(f *FeedForwardNetwork) {
		f.ActivationFn = fn
	}
}

// WithAccumulatorMode selects how sums are carried between layers.
func WithAccumulatorMode(mode AccumulatorMode) Option {
	return func(f *FeedForwardNetwork) {
		f.Mode = mode
	}
}

// CreateFeedForwardNetwork builds a runnable evaluator over net.
// By default it uses brain.Bound and carries the accumulator across layers.
func CreateFeedForwardNetwork(net *brain.Network, opts ...Option) (*FeedForwardNetwork, error) {
	if net == nil {
		return nil, fmt.Errorf("cannot create FeedForwardNetwork from a nil network")
	}
	ff := &FeedForwardNetwork{
		Network:      net,
		ActivationFn: brain.Bound,
		Mode:         CarryAccumulator,
	}
	for _, opt := range opts {
		opt(ff)
	}
	if ff.ActivationFn == nil {
		return nil, fmt.Errorf("cannot create FeedForwardNetwork with a nil activation function")
	}
	if ff.Mode != CarryAccumulator && ff.Mode != ResetAccumulator {
		return nil, fmt.Errorf("cannot create FeedForwardNetwork: %v", ff.Mode)
	}
	return ff, nil
}

// FromConfig builds an evaluator using the activation and accumulator named in cfg.
func FromConfig(net *brain.Network, cfg brain.BrainConfig) (*FeedForwardNetwork, error) {
	name := cfg.Activation
	if name == "" {
		name = brain.DefaultActivation
	}
	actFn, err := brain.GetActivation(name)
	if err != nil {
		return nil, err
	}
	mode, err := ParseAccumulatorMode(cfg.Accumulator)
	if err != nil {
		return nil, err
	}
	return CreateFeedForwardNetwork(net, WithActivation(actFn), WithAccumulatorMode(mode))
}

// Compute returns every layer's activations for the given input.
// The first layer is a copy of input; each following layer is produced by
// summing, for neuron i, input[i]*w + b over the block of LayerSize
// connections owned by i, then applying the activation function.
// The input length must equal the network's layer size.
func (ff *FeedForwardNetwork) Compute(input []float64) ([][]float64, error) {
	topo := ff.Network.Topology()
	if len(input) != topo.LayerSize {
		return nil, fmt.Errorf("%w: input has %d values, network layer size is %d",
			brain.ErrTopologyMismatch, len(input), topo.LayerSize)
	}

	layers := make([][]float64, 0, topo.LayerCount)
	layers = append(layers, append([]float64(nil), input...))

	acc := make([]float64, topo.LayerSize)
	for layer := 0; layer < topo.LayerCount-1; layer++ {
		prev := layers[len(layers)-1]
		if ff.Mode == ResetAccumulator {
			clear(acc)
		}
		for i, neuron := range prev {
			for _, conn := range ff.Network.Block(layer, i) {
				acc[i] += conn.Contribution(neuron)
			}
		}
		// Bounding is applied in place, so a carried accumulator holds the
		// bounded values of the previous layer.
		for i := range acc {
			acc[i] = ff.ActivationFn(acc[i])
		}
		layers = append(layers, append([]float64(nil), acc...))
	}
	return layers, nil
}

// Output returns only the last layer's activations.
func (ff *FeedForwardNetwork) Output(input []float64) ([]float64, error) {
	layers, err := ff.Compute(input)
	if err != nil {
		return nil, err
	}
	return layers[len(layers)-1], nil
}

// Evaluate is a one-shot Compute using the default bounding function and
// carried accumulator.
func Evaluate(net *brain.Network, input []float64) ([][]float64, error) {
	ff, err := CreateFeedForwardNetwork(net)
	if err != nil {
		return nil, err
	}
	return ff.Compute(input)
}

// ConstantInput returns a layer-sized input with every neuron set to v.
func ConstantInput(net *brain.Network, v float64) []float64 {
	in := make([]float64, net.Topology().LayerSize)
	for i := range in {
		in[i] = v
	}
	return in
}
