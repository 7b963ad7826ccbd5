package brain

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Reference topology drawn by the visualization.
const (
	LayerSize  = 5
	LayerCount = 3
)

// Parameters are drawn uniformly from [ParamMin, ParamMax].
const (
	ParamMin = -1.0
	ParamMax = 1.0
)

var (
	// ErrTopologyMismatch is returned when a vector or parameter set does not
	// match the network's topology.
	ErrTopologyMismatch = errors.New("topology mismatch")
	// ErrInvalidTopology is returned for non-positive layer sizes or counts.
	ErrInvalidTopology = errors.New("invalid topology")
)

// Topology describes the fixed shape of a network.
type Topology struct {
	LayerSize  int // Neurons per layer
	LayerCount int // Layers including the input layer
}

// DefaultTopology returns the reference 5x3 topology.
func DefaultTopology() Topology {
	return Topology{LayerSize: LayerSize, LayerCount: LayerCount}
}

// Validate checks that both dimensions are positive.
func (t Topology) Validate() error {
	if t.LayerSize <= 0 {
		return fmt.Errorf("%w: layer size must be positive, got %d", ErrInvalidTopology, t.LayerSize)
	}
	if t.LayerCount <= 0 {
		return fmt.Errorf("%w: layer count must be positive, got %d", ErrInvalidTopology, t.LayerCount)
	}
	return nil
}

// ConnectionsPerLayer is the number of connections between two adjacent layers.
func (t Topology) ConnectionsPerLayer() int {
	return t.LayerSize * t.LayerSize
}

// NumConnections is the total connection count, LayerSize² × (LayerCount − 1).
func (t Topology) NumConnections() int {
	if t.LayerCount < 1 {
		return 0
	}
	return t.ConnectionsPerLayer() * (t.LayerCount - 1)
}

// Network holds the read-only parameters of a fixed-topology feed-forward network.
// It is safe for concurrent readers.
type Network struct {
	topology    Topology
	connections []Connection
}

// New creates a network with the reference topology and a time-seeded random source.
func New() *Network {
	net, err := NewNetwork(DefaultTopology(), nil)
	if err != nil {
		// The reference topology is always valid.
		panic(err)
	}
	return net
}

// NewSeeded creates a reference-topology network from a deterministic seed.
func NewSeeded(seed uint64) *Network {
	net, err := NewNetwork(DefaultTopology(), rand.NewSource(seed))
	if err != nil {
		panic(err)
	}
	return net
}

// NewNetwork creates a network whose weights and biases are drawn independently
// from U[ParamMin, ParamMax] using src. A nil src is replaced by a time-seeded one.
func NewNetwork(topology Topology, src rand.Source) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	dist := distuv.Uniform{Min: ParamMin, Max: ParamMax, Src: src}

	conns := make([]Connection, topology.NumConnections())
	for i := range conns {
		conns[i] = Connection{
			Weight: dist.Rand(),
			Bias:   dist.Rand(),
		}
	}
	return &Network{topology: topology, connections: conns}, nil
}

// NewNetworkFromConnections creates a network from explicit parameters.
// The slice is copied; its length must equal topology.NumConnections().
func NewNetworkFromConnections(topology Topology, conns []Connection) (*Network, error) {
	if err := topology.Validate(); err != nil {
		return nil, err
	}
	if len(conns) != topology.NumConnections() {
		return nil, fmt.Errorf("%w: expected %d connections for %dx%d network, got %d",
			ErrTopologyMismatch, topology.NumConnections(), topology.LayerSize, topology.LayerCount, len(conns))
	}
	return &Network{
		topology:    topology,
		connections: append([]Connection(nil), conns...),
	}, nil
}

// Topology returns the network's shape.
func (n *Network) Topology() Topology {
	return n.topology
}

// NumConnections returns the number of connections held by the network.
func (n *Network) NumConnections() int {
	return len(n.connections)
}

// Connection returns the i-th connection in storage order.
func (n *Network) Connection(i int) Connection {
	return n.connections[i]
}

// Connections returns a copy of all connections in storage order.
func (n *Network) Connections() []Connection {
	return append([]Connection(nil), n.connections...)
}

// Block returns the contiguous connections assigned to neuron i when computing
// the layer after `layer`. The returned slice aliases the network and must not
// be modified.
func (n *Network) Block(layer, i int) []Connection {
	size := n.topology.LayerSize
	start := layer*n.topology.ConnectionsPerLayer() + i*size
	return n.connections[start : start+size : start+size]
}

// String returns a short description of the network.
func (n *Network) String() string {
	return fmt.Sprintf("Network(LayerSize: %d, LayerCount: %d, Connections: %d)",
		n.topology.LayerSize, n.topology.LayerCount, len(n.connections))
}
